package models

import "strings"

// Axis names a field binding slot on a chart.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// ParseAxis parses "x" or "y" (case-insensitive).
func ParseAxis(s string) (Axis, bool) {
	switch Axis(strings.ToLower(strings.TrimSpace(s))) {
	case AxisX:
		return AxisX, true
	case AxisY:
		return AxisY, true
	}
	return "", false
}
