package models

// ChartType identifies how a chart's series should be drawn.
type ChartType string

const (
	ChartTypeBar     ChartType = "bar"
	ChartTypeLine    ChartType = "line"
	ChartTypePie     ChartType = "pie"
	ChartTypeScatter ChartType = "scatter"
)

// ChartData is the render-ready description of one dashboard chart. An empty
// chart (no labels, no series values) is valid and renders as an empty panel.
type ChartData struct {
	Type   ChartType `json:"type"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels,omitempty"`
	Series []Series  `json:"series"`
}

// Series is one named sequence of values or points within a chart.
type Series struct {
	Name   string         `json:"name,omitempty"`
	Values []float64      `json:"values,omitempty"`
	Points []ScatterPoint `json:"points,omitempty"`
}

// ScatterPoint is one x/y sample on a scatter chart.
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}
