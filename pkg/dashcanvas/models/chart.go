package models

// ChartInstance is a chart placed on the canvas.
type ChartInstance struct {
	// ID is unique for the lifetime of the canvas and never reused.
	ID string `json:"id"`
	// Name is the display label, "<Type> Chart" at creation.
	Name string `json:"name"`
	// Type is the visualization kind.
	Type ChartType `json:"type"`
	// Position is the chart rectangle in canvas space.
	Position Rect `json:"position"`
	// RawData is the shared sample dataset the chart reads from.
	// It is a handle, not a copy, and is emitted once per snapshot instead of per chart.
	RawData Dataset `json:"-"`
	// XField is the field path bound to the x axis (empty if unbound).
	XField string `json:"x_field,omitempty"`
	// YField is the field path bound to the y axis (empty if unbound).
	YField string `json:"y_field,omitempty"`
}

// Field returns the field path bound to axis.
func (c ChartInstance) Field(axis Axis) string {
	switch axis {
	case AxisX:
		return c.XField
	case AxisY:
		return c.YField
	}
	return ""
}
