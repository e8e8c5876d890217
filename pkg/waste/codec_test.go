package waste

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	collections := map[string][]Entry{
		"empty": {},
		"single": {
			{Id: uuid.New(), Timestamp: time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC), CategoryId: 2, WeightKg: 0.5, PricePerKg: 2.0},
		},
		"ordered with sub-second timestamps": {
			{Id: uuid.New(), Timestamp: time.Date(2025, 12, 5, 10, 0, 0, 123456789, time.UTC), CategoryId: 16, WeightKg: 0.25, PricePerKg: 10},
			{Id: uuid.New(), Timestamp: time.Date(2024, 2, 29, 23, 59, 59, 1, time.UTC), CategoryId: 1, WeightKg: 1.0 / 3.0, PricePerKg: 0.1},
			{Id: uuid.New(), Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), CategoryId: 99, WeightKg: 0, PricePerKg: 0},
		},
	}

	for name, entries := range collections {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(entries)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, entries, decoded)

			again, err := Encode(decoded)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestCodec_Format(t *testing.T) {
	id := uuid.MustParse("5f0c7f5e-8a43-4c3b-9a43-6b4ad2f0b9d1")
	entries := []Entry{{
		Id:         id,
		Timestamp:  time.Date(2025, 12, 5, 10, 30, 0, 0, time.FixedZone("CET", 3600)),
		CategoryId: 3,
		WeightKg:   0.25,
		PricePerKg: 4,
	}}

	data, err := Encode(entries)

	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "5f0c7f5e-8a43-4c3b-9a43-6b4ad2f0b9d1",
		"timestamp": "2025-12-05T09:30:00Z",
		"categoryID": 3,
		"weightKg": 0.25,
		"pricePerKg": 4
	}]`, string(data))

	empty, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestCodec_DecodeErrors(t *testing.T) {
	payloads := []string{
		``,
		`{`,
		`null`,
		`{"id": "5f0c7f5e-8a43-4c3b-9a43-6b4ad2f0b9d1"}`,
		`[{"id": "not-a-uuid", "timestamp": "2025-12-05T09:30:00Z"}]`,
		`[{"id": "5f0c7f5e-8a43-4c3b-9a43-6b4ad2f0b9d1", "timestamp": "yesterday"}]`,
		`[{"timestamp": "2025-12-05T09:30:00Z", "categoryID": 1}]`,
	}
	for _, payload := range payloads {
		_, err := Decode([]byte(payload))
		assert.Error(t, err, payload)
	}
}
