package models

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category (X axis) values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y axis values.
	YRange string `json:"y_range,omitempty"`
	// Color is the RGB fill of the series, e.g. "4F81BD", when set explicitly.
	Color string `json:"color,omitempty"`
}

// Chart represents an embedded chart read back from a workbook.
type Chart struct {
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Column, Bar, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// XAxisTitle is the category axis title.
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// Anchor is the top-left cell the chart is attached to.
	Anchor string `json:"anchor,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
