package dashboard

import (
	"strconv"

	"github.com/ukydev/car-sales-analytics/internal/models"
)

// Chart renderers are pure functions from materialized rows to ChartData.
// Each tolerates an empty input and returns a valid empty chart.

// ManufacturerChart renders the manufacturer distribution bar chart.
func ManufacturerChart(rows []CountRow) models.ChartData {
	labels, values := splitCounts(rows)
	return models.ChartData{
		Type:   models.ChartTypeBar,
		Title:  "Manufacturer Distribution",
		Labels: labels,
		Series: []models.Series{{Name: "Cars", Values: values}},
	}
}

// AvgPriceChart renders the average price per manufacturer bar chart.
func AvgPriceChart(rows []AvgRow) models.ChartData {
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
		values = append(values, r.Average)
	}
	return models.ChartData{
		Type:   models.ChartTypeBar,
		Title:  "Average Car Price by Manufacturer",
		Labels: labels,
		Series: []models.Series{{Name: "Avg price", Values: values}},
	}
}

// FuelTypeChart renders the fuel type distribution pie chart.
func FuelTypeChart(rows []CountRow) models.ChartData {
	labels, values := splitCounts(rows)
	return models.ChartData{
		Type:   models.ChartTypePie,
		Title:  "Fuel Type Distribution",
		Labels: labels,
		Series: []models.Series{{Name: "Cars", Values: values}},
	}
}

// SeverityChart renders the accident severity bar chart. Severities named in
// order come first in that order; anything else keeps the pipeline's count
// ordering after them, so no category is ever dropped.
func SeverityChart(rows []CountRow, order []string) models.ChartData {
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Label] = r.Count
	}
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, sev := range order {
		if n, ok := counts[sev]; ok {
			labels = append(labels, sev)
			values = append(values, float64(n))
			delete(counts, sev)
		}
	}
	for _, r := range rows {
		if _, ok := counts[r.Label]; ok {
			labels = append(labels, r.Label)
			values = append(values, float64(r.Count))
			delete(counts, r.Label)
		}
	}
	return models.ChartData{
		Type:   models.ChartTypeBar,
		Title:  "Accident Severity Distribution",
		Labels: labels,
		Series: []models.Series{{Name: "Accidents", Values: values}},
	}
}

// ServiceFrequencyChart renders the services-per-year line chart for the
// configured window.
func ServiceFrequencyChart(rows []YearCountRow, windowYears int) models.ChartData {
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, strconv.Itoa(r.Year))
		values = append(values, float64(r.Count))
	}
	return models.ChartData{
		Type:   models.ChartTypeLine,
		Title:  "Service Frequency (Last " + strconv.Itoa(windowYears) + " Years)",
		Labels: labels,
		Series: []models.Series{{Name: "Services", Values: values}},
	}
}

// ScatterChart renders price against mileage, one series per fuel type so the
// page can colour points the way the fuel filter groups them.
func ScatterChart(rows []ScatterRow) models.ChartData {
	byFuel := make(map[string][]models.ScatterPoint)
	fuelOrder := make([]string, 0, 4)
	for _, r := range rows {
		if _, seen := byFuel[r.FuelType]; !seen {
			fuelOrder = append(fuelOrder, r.FuelType)
		}
		byFuel[r.FuelType] = append(byFuel[r.FuelType], models.ScatterPoint{
			X:     r.Mileage,
			Y:     r.Price,
			Label: r.Manufacturer + " " + r.Model,
		})
	}
	series := make([]models.Series, 0, len(fuelOrder))
	for _, fuel := range fuelOrder {
		series = append(series, models.Series{Name: fuel, Points: byFuel[fuel]})
	}
	return models.ChartData{
		Type:   models.ChartTypeScatter,
		Title:  "Price vs Mileage",
		Series: series,
	}
}

func splitCounts(rows []CountRow) ([]string, []float64) {
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
		values = append(values, float64(r.Count))
	}
	return labels, values
}
