package dashcanvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/registry"
)

func TestPalette(t *testing.T) {
	items := Palette()
	types := registry.ListTypes()
	require.Len(t, items, len(types))

	for i, item := range items {
		assert.Equal(t, types[i], item.Type)
		assert.Equal(t, registry.Describe(item.Type), item.Descriptor)
		assert.Equal(t, models.DropPayload{ChartType: string(item.Type)}, item.DragPayload())
	}
}

func TestDropPaletteItem(t *testing.T) {
	c, _ := newTestCanvas(t)
	ds := sampleDataset()
	c.SetDataset(ds)

	chart := c.Drop(Palette()[0])
	assert.Equal(t, registry.ListTypes()[0], chart.Type)
	assert.Equal(t, ds, chart.RawData)
	assert.Equal(t, 1, c.Len())
}

func TestDropTemplate(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetDataset(sampleDataset())

	tmpl := Template{
		Name:   "Sales by region",
		Type:   models.ChartBar,
		XField: "region",
		YField: "sales.q2",
	}
	chart := c.Drop(tmpl)

	assert.Equal(t, "Sales by region", chart.Name)
	assert.Equal(t, models.ChartBar, chart.Type)
	assert.Equal(t, "region", chart.XField)
	assert.Equal(t, "sales.q2", chart.YField)
}

func TestHandleDrop(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		ok       bool
		expected models.ChartType
	}{
		{"palette payload", `{"chartType":"line"}`, true, models.ChartLine},
		{"mixed case", `{"chartType":" Pie "}`, true, models.ChartPie},
		{"unknown type", `{"chartType":"sankey"}`, true, models.ChartType("sankey")},
		{"empty type", `{"chartType":""}`, false, ""},
		{"no type", `{}`, false, ""},
		{"not json", `line`, false, ""},
		{"wrong shape", `["line"]`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCanvas(t)
			chart, ok := c.HandleDrop([]byte(tt.data))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, chart.Type)
				assert.Equal(t, 1, c.Len())
			} else {
				assert.Equal(t, 0, c.Len())
			}
		})
	}
}

func TestHandleDropLogsBadPayload(t *testing.T) {
	c, logs := newTestCanvas(t)

	_, ok := c.HandleDrop([]byte(`{`))
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("drop ignored").Len())
}

func TestHandleDropWithPresets(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetDataset(sampleDataset())

	chart, ok := c.HandleDrop([]byte(`{"chartType":"area","name":"Trend","xField":"region","yField":"sales.q1"}`))
	require.True(t, ok)
	assert.Equal(t, "Trend", chart.Name)
	assert.Equal(t, "region", chart.XField)
	assert.Equal(t, "sales.q1", chart.YField)
}

func TestDropNotifiesWithPresetsApplied(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetDataset(sampleDataset())

	var seen []models.ChartInstance
	c.OnChartAdded(func(chart models.ChartInstance) {
		seen = append(seen, chart)
	})

	chart := c.Drop(Template{Name: "Q1", Type: models.ChartBar, XField: "region", YField: "sales.q1"})

	require.Len(t, seen, 1)
	assert.Equal(t, chart, seen[0])
	assert.Equal(t, "Q1", seen[0].Name)
	assert.Equal(t, "region", seen[0].XField)
	assert.Equal(t, "sales.q1", seen[0].YField)
}

func TestDropPanelSeesTemplateName(t *testing.T) {
	c, _ := newTestCanvas(t)
	p := NewPanel(c)

	var names []string
	c.OnChartAdded(func(chart models.ChartInstance) {
		names = append(names, chart.Name)
	})

	_, ok := c.HandleDrop([]byte(`{"chartType":"pie","name":"Share"}`))
	require.True(t, ok)
	assert.Equal(t, []string{"Share"}, names)

	v := p.View()
	require.NotNil(t, v.Selected)
	assert.Equal(t, "Share", v.Selected.Name)
}
