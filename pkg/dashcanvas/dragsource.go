package dashcanvas

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/registry"
)

// DragSource is implemented by palette entries that can be dropped on the canvas.
type DragSource interface {
	DragPayload() models.DropPayload
}

// PaletteItem is a chart type entry on the visualization palette.
type PaletteItem struct {
	Type models.ChartType `json:"type"`
	registry.Descriptor
}

// DragPayload implements DragSource.
func (i PaletteItem) DragPayload() models.DropPayload {
	return models.DropPayload{ChartType: string(i.Type)}
}

// Palette returns one item per registered chart type, in registry order.
func Palette() []PaletteItem {
	types := registry.ListTypes()
	items := make([]PaletteItem, len(types))
	for i, t := range types {
		items[i] = PaletteItem{Type: t, Descriptor: registry.Describe(t)}
	}
	return items
}

// Template is a saved chart configuration that can be dropped like a palette item.
type Template struct {
	Name   string           `json:"name" yaml:"name"`
	Type   models.ChartType `json:"type" yaml:"type"`
	XField string           `json:"x_field,omitempty" yaml:"x_field"`
	YField string           `json:"y_field,omitempty" yaml:"y_field"`
}

// DragPayload implements DragSource.
func (t Template) DragPayload() models.DropPayload {
	return models.DropPayload{
		ChartType: string(t.Type),
		Name:      t.Name,
		XField:    t.XField,
		YField:    t.YField,
	}
}

// Drop creates a chart from a drag source using the canvas dataset.
func (c *Canvas) Drop(src DragSource) models.ChartInstance {
	return c.dropPayload(src.DragPayload())
}

// HandleDrop decodes a raw drop event and creates the chart it names.
// Undecodable or empty payloads are ignored.
func (c *Canvas) HandleDrop(data []byte) (models.ChartInstance, bool) {
	p, err := models.DecodeDropPayload(data)
	if err != nil {
		c.logger.Warn("drop ignored", zap.Error(err))
		return models.ChartInstance{}, false
	}
	if strings.TrimSpace(p.ChartType) == "" {
		c.logger.Debug("drop ignored, payload names no chart type")
		return models.ChartInstance{}, false
	}
	return c.dropPayload(p), true
}

func (c *Canvas) dropPayload(p models.DropPayload) models.ChartInstance {
	t, _ := registry.Parse(p.ChartType)
	return c.add(models.ChartInstance{
		Name:     p.Name,
		Type:     t,
		Position: c.place(t, c.opts.ChartSize),
		RawData:  c.dataset,
		XField:   p.XField,
		YField:   p.YField,
	})
}
