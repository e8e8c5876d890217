package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testType EventType = "test.event"

func TestEventBus_Publish(t *testing.T) {
	t.Run("should call handlers in subscription order", func(t *testing.T) {
		bus := NewEventBus()
		var calls []int
		for i := 1; i <= 5; i++ {
			bus.Subscribe(testType, func(e Event) error {
				calls = append(calls, i)
				return nil
			})
		}

		err := bus.Publish(NewEvent(context.Background(), testType, "payload"))

		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, calls)
	})

	t.Run("should keep delivering after a failing or panicking handler", func(t *testing.T) {
		bus := NewEventBus()
		failure := errors.New("boom")
		delivered := false
		bus.Subscribe(testType, func(e Event) error { return failure })
		bus.Subscribe(testType, func(e Event) error { panic("handler exploded") })
		bus.Subscribe(testType, func(e Event) error {
			delivered = true
			return nil
		})

		err := bus.Publish(NewEvent(context.Background(), testType, nil))

		require.Error(t, err)
		assert.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "2 handler(s) failed")
		assert.True(t, delivered)
	})

	t.Run("should not deliver to unsubscribed handlers", func(t *testing.T) {
		bus := NewEventBus()
		calls := 0
		unsubscribe := bus.Subscribe(testType, func(e Event) error {
			calls++
			return nil
		})

		unsubscribe()
		unsubscribe()
		err := bus.Publish(NewEvent(context.Background(), testType, nil))

		assert.NoError(t, err)
		assert.Equal(t, 0, calls)
	})

	t.Run("should refuse to publish with a cancelled context", func(t *testing.T) {
		bus := NewEventBus()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := bus.Publish(NewEvent(ctx, testType, nil))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSubscribeTyped(t *testing.T) {
	bus := NewEventBus()
	var received []EntryAdded
	SubscribeTyped(bus, EntryAddedType, func(e EventT[EntryAdded]) error {
		assert.NotNil(t, e.Context())
		received = append(received, e.Data)
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), EntryAddedType, EntryAdded{Id: "a", CategoryId: 2})))
	require.NoError(t, bus.Publish(NewEvent(context.Background(), EntryAddedType, "wrong payload")))
	require.NoError(t, bus.Publish(NewEvent(nil, EntryAddedType, nil)))

	require.Len(t, received, 1)
	assert.Equal(t, "a", received[0].Id)
}
