package dashcanvas

import (
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/parser"
)

// ImportCharts adds the charts embedded in an xlsx workbook to the canvas.
//
// Frames with geometry keep it; frames anchored only to cells are placed by
// the grid scan. The first series' category and value columns are bound as
// the x and y fields, using the header text of the sheet's table.
// Sheets are imported in name order, charts in drawing order.
func (c *Canvas) ImportCharts(path string, opts LoadOptions) ([]models.ChartInstance, error) {
	frames, err := parser.ExtractChartFrames(path)
	if err != nil {
		return nil, NewLoadError(path, "charts", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "charts", err)
	}
	defer f.Close()

	sheets := make([]string, 0, len(frames))
	for s := range frames {
		sheets = append(sheets, s)
	}
	sort.Strings(sheets)

	var imported []models.ChartInstance
	for _, sheet := range sheets {
		for _, frame := range frames[sheet] {
			chart := c.importFrame(f, frame, opts.tableParams())
			imported = append(imported, chart)
		}
	}

	c.logger.Info("workbook charts imported",
		zap.String("path", path),
		zap.Int("charts", len(imported)))
	return imported, nil
}

func (c *Canvas) importFrame(f *excelize.File, frame parser.ChartFrame, params parser.TableDetectionParams) models.ChartInstance {
	chart := models.ChartInstance{
		Name:     frame.Title,
		Type:     frame.Type,
		Position: frame.Rect,
		RawData:  c.dataset,
		XField:   seriesField(f, frame.Sheet, frame.XRef, params),
		YField:   seriesField(f, frame.Sheet, frame.YRef, params),
	}
	if chart.Name == "" {
		chart.Name = frame.Name
	}
	if frame.Rect.Empty() {
		chart.Position = c.place(frame.Type, c.opts.ChartSize)
	}
	return c.add(chart)
}

// seriesField resolves a series reference to the header of its column.
func seriesField(f *excelize.File, defaultSheet, ref string, params parser.TableDetectionParams) string {
	if ref == "" {
		return ""
	}
	sheet, area, ok := parser.ParseReference(ref)
	if !ok {
		return ""
	}
	if sheet == "" {
		sheet = defaultSheet
	}
	header, err := parser.HeaderAt(f, sheet, area.C1, params)
	if err != nil {
		return ""
	}
	return header
}
