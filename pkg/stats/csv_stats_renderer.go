package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

// RenderStats writes the category breakdown, one row per category in chart
// order, followed by a total row.
func (r *CsvStatsRendererImpl) RenderStats(stats StatsSummary) (string, error) {
	data := make([][]string, 0, len(stats.Categories)+2)
	data = append(data, []string{"Category", "Short", "Weight kg", "Cost", "Share %"})

	chartTotal := 0.0
	for _, ct := range stats.Categories {
		chartTotal += ct.WeightKg
	}
	for _, ct := range stats.Categories {
		share := 0.0
		if chartTotal > 0 {
			share = ct.WeightKg / chartTotal * 100
		}
		data = append(data, []string{
			ct.Category.Title,
			ct.Category.ShortTitle,
			weightToString(ct.WeightKg),
			costToString(ct.Cost),
			strconv.FormatFloat(share, 'f', 1, 64),
		})
	}
	data = append(data, []string{"Total", "", weightToString(stats.TotalWeightKg), costToString(stats.TotalCost), ""})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func weightToString(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 3, 64)
}

func costToString(cost float64) string {
	return strconv.FormatFloat(cost, 'f', 2, 64)
}
