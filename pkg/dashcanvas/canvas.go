package dashcanvas

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/fields"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/placement"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/registry"
)

// ChartAddedFunc is called after a chart has been appended to the canvas.
type ChartAddedFunc func(chart models.ChartInstance)

// Canvas owns the ordered chart collection of one editing session.
//
// All operations absorb bad input: unknown chart types fall back to the
// default descriptor, unknown chart ids are ignored and a full canvas still
// accepts charts with overlapping geometry.
//
// A Canvas is not safe for concurrent use; it is driven by a single UI actor.
type Canvas struct {
	opts     Options
	logger   *zap.Logger
	charts   []models.ChartInstance
	dataset  models.Dataset
	fields   []string
	handlers []ChartAddedFunc
}

// New creates an empty canvas.
func New(opts Options) *Canvas {
	opts = opts.withDefaults()
	return &Canvas{
		opts:   opts,
		logger: opts.Logger,
		fields: []string{},
	}
}

// Snapshot is the canvas state handed to a rendering layer.
type Snapshot struct {
	Fields  []string               `json:"fields"`
	Charts  []models.ChartInstance `json:"charts"`
	Dataset models.Dataset         `json:"dataset"`
}

// OnChartAdded registers fn to be called for every new chart.
func (c *Canvas) OnChartAdded(fn ChartAddedFunc) {
	if fn != nil {
		c.handlers = append(c.handlers, fn)
	}
}

// SetDataset replaces the sample dataset and recomputes the field paths.
// The dataset is shared, not copied.
func (c *Canvas) SetDataset(ds models.Dataset) {
	c.dataset = ds
	c.fields = fields.Paths(ds)
	c.logger.Debug("dataset replaced",
		zap.Int("records", len(ds)),
		zap.Int("fields", len(c.fields)))
}

// Dataset returns the current sample dataset.
func (c *Canvas) Dataset() models.Dataset {
	return c.dataset
}

// Fields returns the selectable field paths of the current dataset.
func (c *Canvas) Fields() []string {
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return out
}

// AddChart creates a chart of type t with the default size, places it next to
// the existing charts and appends it to the canvas.
func (c *Canvas) AddChart(t models.ChartType, rawData models.Dataset) models.ChartInstance {
	return c.AddChartSized(t, rawData, c.opts.ChartSize)
}

// AddChartSized is AddChart with an explicit chart size.
// A size without area falls back to the default size.
func (c *Canvas) AddChartSized(t models.ChartType, rawData models.Dataset, size models.Size) models.ChartInstance {
	return c.add(models.ChartInstance{
		Type:     t,
		Position: c.place(t, size),
		RawData:  rawData,
	})
}

// AddChartAt appends a chart at a caller-chosen position without an overlap check.
func (c *Canvas) AddChartAt(t models.ChartType, rawData models.Dataset, rect models.Rect) models.ChartInstance {
	return c.add(models.ChartInstance{Type: t, Position: rect, RawData: rawData})
}

// place runs the grid scan for a new chart of the given size.
func (c *Canvas) place(t models.ChartType, size models.Size) models.Rect {
	if size.Width <= 0 || size.Height <= 0 {
		size = c.opts.ChartSize
	}

	rect, ok := placement.FindSlot(c.occupied(), size, c.opts.Placement)
	if !ok {
		c.logger.Warn("no free canvas slot, chart overlaps existing charts",
			zap.String("type", string(t)),
			zap.Float64("x", rect.X),
			zap.Float64("y", rect.Y))
	}
	return rect
}

// add assigns an id, fills in a default name and appends chart.
// Handlers see the chart with its name and field presets already applied.
func (c *Canvas) add(chart models.ChartInstance) models.ChartInstance {
	if !registry.IsRegistered(chart.Type) {
		c.logger.Debug("unregistered chart type, using default descriptor", zap.String("type", string(chart.Type)))
	}

	chart.ID = c.opts.NewID()
	if chart.Name == "" {
		chart.Name = chartName(chart.Type)
	}
	for _, path := range []string{chart.XField, chart.YField} {
		c.checkField(chart, path)
	}
	c.charts = append(c.charts, chart)

	for _, fn := range c.handlers {
		fn(chart)
	}
	return chart
}

// checkField logs a bound path missing from the chart dataset.
func (c *Canvas) checkField(chart models.ChartInstance, path string) {
	if path == "" {
		return
	}
	if _, ok := fields.Lookup(firstRecord(chart.RawData), path); !ok {
		c.logger.Debug("bound field is not in the chart dataset",
			zap.String("id", chart.ID),
			zap.String("field", path))
	}
}

func firstRecord(ds models.Dataset) models.Record {
	rec, _ := ds.First()
	return rec
}

func chartName(t models.ChartType) string {
	if strings.TrimSpace(string(t)) == "" {
		return registry.DefaultLabel
	}
	return registry.TypeLabel(t) + " Chart"
}

func (c *Canvas) occupied() []models.Rect {
	rects := make([]models.Rect, len(c.charts))
	for i, ch := range c.charts {
		rects[i] = ch.Position
	}
	return rects
}

func (c *Canvas) index(id string) int {
	for i, ch := range c.charts {
		if ch.ID == id {
			return i
		}
	}
	return -1
}

// BindField sets the x or y field of the chart with the given id.
// It is a no-op returning false when the id or axis is unknown.
func (c *Canvas) BindField(id string, axis models.Axis, path string) bool {
	i := c.index(id)
	if i < 0 {
		c.logger.Debug("bind ignored, unknown chart", zap.String("id", id))
		return false
	}

	switch axis {
	case models.AxisX:
		c.charts[i].XField = path
	case models.AxisY:
		c.charts[i].YField = path
	default:
		c.logger.Debug("bind ignored, unknown axis", zap.String("axis", string(axis)))
		return false
	}

	c.checkField(c.charts[i], path)
	return true
}

// RemoveChart deletes the chart with the given id.
// Its space becomes available to later placements.
func (c *Canvas) RemoveChart(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.charts = append(c.charts[:i], c.charts[i+1:]...)
	return true
}

// MoveChart replaces the chart rectangle, as after a drag or resize.
// User-initiated overlap is allowed.
func (c *Canvas) MoveChart(id string, rect models.Rect) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.charts[i].Position = rect
	return true
}

// RenameChart changes the display name of a chart.
func (c *Canvas) RenameChart(id, name string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.charts[i].Name = name
	return true
}

// Chart returns the chart with the given id.
func (c *Canvas) Chart(id string) (models.ChartInstance, bool) {
	i := c.index(id)
	if i < 0 {
		return models.ChartInstance{}, false
	}
	return c.charts[i], true
}

// Charts returns the charts in creation order.
func (c *Canvas) Charts() []models.ChartInstance {
	out := make([]models.ChartInstance, len(c.charts))
	copy(out, c.charts)
	return out
}

// Len returns the number of charts.
func (c *Canvas) Len() int {
	return len(c.charts)
}

// Snapshot returns the current state for rendering.
func (c *Canvas) Snapshot() Snapshot {
	ds := c.dataset
	if ds == nil {
		ds = models.Dataset{}
	}
	return Snapshot{
		Fields:  c.Fields(),
		Charts:  c.Charts(),
		Dataset: ds,
	}
}
