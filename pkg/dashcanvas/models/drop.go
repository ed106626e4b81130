package models

import (
	"encoding/json"
	"fmt"
)

// DropPayload is the data carried by a palette drag source onto the canvas.
type DropPayload struct {
	// ChartType is the raw chart type identifier.
	ChartType string `json:"chartType"`
	// Name optionally overrides the generated chart name (saved templates).
	Name string `json:"name,omitempty"`
	// XField optionally presets the x binding.
	XField string `json:"xField,omitempty"`
	// YField optionally presets the y binding.
	YField string `json:"yField,omitempty"`
}

// DecodeDropPayload decodes a drop event body.
func DecodeDropPayload(data []byte) (DropPayload, error) {
	var p DropPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return DropPayload{}, fmt.Errorf("decode drop payload: %w", err)
	}
	return p, nil
}
