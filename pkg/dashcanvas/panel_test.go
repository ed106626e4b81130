package dashcanvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/registry"
)

func TestPanelStartsOnVisualizations(t *testing.T) {
	c, _ := newTestCanvas(t)
	p := NewPanel(c)

	assert.Equal(t, TabVisualizations, p.ActiveTab())

	v := p.View()
	assert.Equal(t, TabVisualizations, v.ActiveTab)
	assert.Len(t, v.Palette, len(registry.ListTypes()))
	assert.Nil(t, v.Fields)
	assert.Nil(t, v.Selected)
	assert.Empty(t, v.Charts)
}

func TestPanelSwitchesToFieldsOnChartAdded(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetDataset(sampleDataset())
	p := NewPanel(c)

	chart := c.AddChart(models.ChartBar, c.Dataset())

	assert.Equal(t, TabFields, p.ActiveTab())
	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, chart.ID, selected.ID)

	v := p.View()
	assert.Equal(t, TabFields, v.ActiveTab)
	assert.Nil(t, v.Palette)
	assert.Equal(t, []string{"region", "sales.q1", "sales.q2"}, v.Fields)
	require.NotNil(t, v.Selected)
	assert.Equal(t, chart.ID, v.Selected.ID)
	assert.Len(t, v.Charts, 1)
}

func TestPanelSetActiveTab(t *testing.T) {
	c, _ := newTestCanvas(t)
	p := NewPanel(c)

	p.SetActiveTab(TabFields)
	assert.Equal(t, TabFields, p.ActiveTab())

	p.SetActiveTab(Tab("settings"))
	assert.Equal(t, TabFields, p.ActiveTab())

	p.SetActiveTab(TabVisualizations)
	assert.Equal(t, TabVisualizations, p.ActiveTab())
}

func TestPanelSelect(t *testing.T) {
	c, _ := newTestCanvas(t)
	p := NewPanel(c)

	a := c.AddChart(models.ChartBar, nil)
	b := c.AddChart(models.ChartLine, nil)

	selected, _ := p.Selected()
	assert.Equal(t, b.ID, selected.ID)

	assert.True(t, p.Select(a.ID))
	selected, _ = p.Selected()
	assert.Equal(t, a.ID, selected.ID)

	assert.False(t, p.Select("nope"))
	selected, _ = p.Selected()
	assert.Equal(t, a.ID, selected.ID)

	c.RemoveChart(a.ID)
	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Nil(t, p.View().Selected)
}

func TestPanelViewReflectsBindings(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetDataset(sampleDataset())
	p := NewPanel(c)

	chart := c.AddChart(models.ChartBar, c.Dataset())
	c.BindField(chart.ID, models.AxisX, "region")

	v := p.View()
	require.NotNil(t, v.Selected)
	assert.Equal(t, "region", v.Selected.XField)
	assert.Equal(t, "region", v.Charts[0].XField)
}
