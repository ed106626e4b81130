package parser

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/registry"
)

// ChartFrame is a chart embedded in a workbook drawing.
type ChartFrame struct {
	// Sheet is the worksheet owning the drawing.
	Sheet string `json:"sheet"`
	// Name is the drawing object name, e.g. "Chart 1".
	Name string `json:"name"`
	// Tag is the OOXML plot element, e.g. "barChart".
	Tag string `json:"tag"`
	// Type is Tag mapped onto the chart registry.
	Type models.ChartType `json:"type"`
	// Title is the chart title text.
	Title string `json:"title,omitempty"`
	// Rect is the frame geometry in pixels. Empty when the drawing only
	// anchors the chart to cells.
	Rect models.Rect `json:"rect"`
	// XRef is the category (or x value) reference of the first series.
	XRef string `json:"x_ref,omitempty"`
	// YRef is the value (or y value) reference of the first series.
	YRef string `json:"y_ref,omitempty"`
}

// anchorFrame holds what the drawing part says about one chart.
type anchorFrame struct {
	rID  string
	name string
	rect models.Rect
}

// ExtractChartFrames extracts the charts of every sheet in an xlsx file.
// Charts are returned in drawing order. Unreadable chart parts are skipped.
func ExtractChartFrames(xlsxPath string) (map[string][]ChartFrame, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	drawings, err := getSheetDrawingMap(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]ChartFrame)
	for sheetName, drawingPath := range drawings {
		frames := getChartFramesFromDrawing(&r.Reader, drawingPath)
		for i := range frames {
			frames[i].Sheet = sheetName
		}
		if len(frames) > 0 {
			result[sheetName] = frames
		}
	}

	return result, nil
}

// getChartFramesFromDrawing resolves the chart parts referenced by a drawing.
func getChartFramesFromDrawing(r *zip.Reader, drawingPath string) []ChartFrame {
	var result []ChartFrame

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	anchors := parseDrawingForCharts(drawingXML)
	if len(anchors) == 0 {
		return result
	}

	relsPath := strings.Replace(drawingPath, "drawings/", "drawings/_rels/", 1)
	relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

	relsXML, err := readZipFile(r, relsPath)
	if err != nil || relsXML == nil {
		return result
	}

	chartPaths := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if strings.Contains(strings.ToLower(rel.relType), "chart") {
			chartPaths[rel.id] = resolveRelativePath(rel.target, "xl/charts")
		}
	}

	for _, a := range anchors {
		chartPath, ok := chartPaths[a.rID]
		if !ok {
			continue
		}
		chartXML, err := readZipFile(r, chartPath)
		if err != nil || chartXML == nil {
			continue
		}
		frame := parseChartXML(chartXML)
		frame.Name = a.name
		frame.Rect = a.rect
		result = append(result, frame)
	}

	return result
}

// parseDrawingForCharts finds graphic frames holding charts, in document order.
func parseDrawingForCharts(data []byte) []anchorFrame {
	var result []anchorFrame
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "graphicFrame" {
			continue
		}
		if a := parseGraphicFrame(decoder); a.rID != "" {
			result = append(result, a)
		}
	}

	return result
}

// parseGraphicFrame parses graphicFrame content.
func parseGraphicFrame(decoder *xml.Decoder) anchorFrame {
	var a anchorFrame
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						a.name = attr.Value
					}
				}
			case "xfrm":
				l, tp, w, h := parseXfrm(decoder)
				a.rect = models.Rect{X: l, Y: tp, Width: w, Height: h}
				depth--
			case "chart":
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						a.rID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return a
}

// parseChartXML parses a chart part.
func parseChartXML(data []byte) ChartFrame {
	var frame ChartFrame
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &frame)
		}
	}

	if frame.Tag == "" {
		frame.Type = "unknown"
	} else {
		frame.Type = registry.FromOOXML(frame.Tag)
	}
	return frame
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, frame *ChartFrame) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				frame.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, frame)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle concatenates the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// isPlotTag reports whether an element inside plotArea is a plot group.
func isPlotTag(local string) bool {
	if _, ok := registry.OOXMLTypeMap[local]; ok {
		return true
	}
	return strings.HasSuffix(local, "Chart")
}

// parsePlotArea records the first plot group and its first series.
func parsePlotArea(decoder *xml.Decoder, frame *ChartFrame) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if frame.Tag == "" && isPlotTag(t.Name.Local) {
				frame.Tag = t.Name.Local
				frame.XRef, frame.YRef = parseFirstSeries(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseFirstSeries returns the x and y references of the first ser element.
func parseFirstSeries(decoder *xml.Decoder) (xRef, yRef string) {
	depth := 1
	seen := false

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" && !seen {
				seen = true
				xRef, yRef = parseSingleSeries(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) (xRef, yRef string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cat", "xVal":
				xRef = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				yRef = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the formula reference of a cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}
