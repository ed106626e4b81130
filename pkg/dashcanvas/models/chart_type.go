// Package models defines data structures for the chart canvas.
package models

// ChartType identifies a visualization kind on the palette.
// Values outside the registered set are tolerated and degrade to a default descriptor.
type ChartType string

const (
	ChartBar      ChartType = "bar"
	ChartLine     ChartType = "line"
	ChartPie      ChartType = "pie"
	ChartArea     ChartType = "area"
	ChartScatter  ChartType = "scatter"
	ChartTable    ChartType = "table"
	ChartMap      ChartType = "map"
	ChartCard     ChartType = "card"
	ChartGauge    ChartType = "gauge"
	ChartBubble   ChartType = "bubble"
	ChartDoughnut ChartType = "doughnut"
	ChartPolar    ChartType = "polar"
	ChartRadar    ChartType = "radar"
)

// String returns the type identifier.
func (t ChartType) String() string {
	return string(t)
}
