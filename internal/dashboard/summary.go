package dashboard

import "github.com/montanaflynn/stats"

// Summary holds the headline numbers for the current filter selection,
// computed locally from the scatter sample.
type Summary struct {
	TotalCars   int64   `json:"total_cars"`
	MeanPrice   float64 `json:"mean_price"`
	MedianPrice float64 `json:"median_price"`
	MeanMileage float64 `json:"mean_mileage"`
}

func buildSummary(total int64, rows []ScatterRow) Summary {
	s := Summary{TotalCars: total}
	if len(rows) == 0 {
		return s
	}
	prices := make([]float64, 0, len(rows))
	mileages := make([]float64, 0, len(rows))
	for _, r := range rows {
		prices = append(prices, r.Price)
		mileages = append(mileages, r.Mileage)
	}
	// stats only errors on empty input, which is handled above.
	s.MeanPrice, _ = stats.Mean(prices)
	s.MedianPrice, _ = stats.Median(prices)
	s.MeanMileage, _ = stats.Mean(mileages)
	return s
}
