package dashcanvas

import (
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

// Tab is a side panel mode.
type Tab string

const (
	TabVisualizations Tab = "visualizations"
	TabFields         Tab = "fields"
)

// Panel tracks the side panel state of a canvas.
// It switches to the fields tab whenever a chart is added.
type Panel struct {
	canvas   *Canvas
	active   Tab
	selected string
}

// PanelView is what the side panel shows.
type PanelView struct {
	ActiveTab Tab                    `json:"active_tab"`
	Palette   []PaletteItem          `json:"palette,omitempty"`
	Fields    []string               `json:"fields,omitempty"`
	Selected  *models.ChartInstance  `json:"selected,omitempty"`
	Charts    []models.ChartInstance `json:"charts"`
}

// NewPanel creates a panel on the visualizations tab and subscribes it to c.
func NewPanel(c *Canvas) *Panel {
	p := &Panel{canvas: c, active: TabVisualizations}
	c.OnChartAdded(p.chartAdded)
	return p
}

func (p *Panel) chartAdded(chart models.ChartInstance) {
	p.selected = chart.ID
	p.SetActiveTab(TabFields)
}

// ActiveTab returns the current tab.
func (p *Panel) ActiveTab() Tab {
	return p.active
}

// SetActiveTab switches tabs. Unknown tabs are ignored.
func (p *Panel) SetActiveTab(t Tab) {
	switch t {
	case TabVisualizations, TabFields:
		p.active = t
	}
}

// Select marks the chart the fields tab binds to.
func (p *Panel) Select(id string) bool {
	if _, ok := p.canvas.Chart(id); !ok {
		return false
	}
	p.selected = id
	return true
}

// Selected returns the selected chart, if it still exists.
func (p *Panel) Selected() (models.ChartInstance, bool) {
	if p.selected == "" {
		return models.ChartInstance{}, false
	}
	return p.canvas.Chart(p.selected)
}

// View renders the panel from the canvas contents.
func (p *Panel) View() PanelView {
	v := PanelView{
		ActiveTab: p.active,
		Charts:    p.canvas.Charts(),
	}

	switch p.active {
	case TabVisualizations:
		v.Palette = Palette()
	case TabFields:
		v.Fields = p.canvas.Fields()
		if chart, ok := p.Selected(); ok {
			v.Selected = &chart
		}
	}
	return v
}
