// Package registry holds the palette metadata for supported chart types.
package registry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

// DefaultIcon is used for chart types the registry does not know.
const DefaultIcon = "chart"

// DefaultLabel is used when a chart type carries no usable name.
const DefaultLabel = "Chart"

// Descriptor is the palette presentation of a chart type.
type Descriptor struct {
	// Icon is the icon identifier shown on the palette.
	Icon string `json:"icon"`
	// Label is the human-readable name.
	Label string `json:"label"`
}

// types is the palette order.
var types = []models.ChartType{
	models.ChartBar,
	models.ChartLine,
	models.ChartPie,
	models.ChartArea,
	models.ChartScatter,
	models.ChartTable,
	models.ChartMap,
	models.ChartCard,
	models.ChartGauge,
	models.ChartBubble,
	models.ChartDoughnut,
	models.ChartPolar,
	models.ChartRadar,
}

var descriptors = map[models.ChartType]Descriptor{
	models.ChartBar:      {Icon: "bar-chart", Label: "Bar"},
	models.ChartLine:     {Icon: "line-chart", Label: "Line"},
	models.ChartPie:      {Icon: "pie-chart", Label: "Pie"},
	models.ChartArea:     {Icon: "area-chart", Label: "Area"},
	models.ChartScatter:  {Icon: "scatter-chart", Label: "Scatter"},
	models.ChartTable:    {Icon: "table", Label: "Table"},
	models.ChartMap:      {Icon: "map", Label: "Map"},
	models.ChartCard:     {Icon: "card", Label: "Card"},
	models.ChartGauge:    {Icon: "gauge", Label: "Gauge"},
	models.ChartBubble:   {Icon: "bubble-chart", Label: "Bubble"},
	models.ChartDoughnut: {Icon: "doughnut-chart", Label: "Doughnut"},
	models.ChartPolar:    {Icon: "polar-chart", Label: "Polar Area"},
	models.ChartRadar:    {Icon: "radar-chart", Label: "Radar"},
}

// OOXMLTypeMap maps OOXML plot element tags to chart types.
var OOXMLTypeMap = map[string]models.ChartType{
	"lineChart":      models.ChartLine,
	"line3DChart":    models.ChartLine,
	"barChart":       models.ChartBar,
	"bar3DChart":     models.ChartBar,
	"areaChart":      models.ChartArea,
	"area3DChart":    models.ChartArea,
	"pieChart":       models.ChartPie,
	"pie3DChart":     models.ChartPie,
	"ofPieChart":     models.ChartPie,
	"doughnutChart":  models.ChartDoughnut,
	"scatterChart":   models.ChartScatter,
	"bubbleChart":    models.ChartBubble,
	"radarChart":     models.ChartRadar,
	"surfaceChart":   "surface",
	"surface3DChart": "surface",
	"stockChart":     "stock",
}

// ListTypes returns the supported chart types in palette order.
func ListTypes() []models.ChartType {
	out := make([]models.ChartType, len(types))
	copy(out, types)
	return out
}

// IsRegistered reports whether t is a supported chart type.
func IsRegistered(t models.ChartType) bool {
	_, ok := descriptors[t]
	return ok
}

// Describe returns the palette descriptor for t.
// Unknown types get DefaultIcon and a label derived from the type name.
func Describe(t models.ChartType) Descriptor {
	if d, ok := descriptors[t]; ok {
		return d
	}
	return Descriptor{Icon: DefaultIcon, Label: TypeLabel(t)}
}

// TypeLabel capitalizes the type identifier, "bar" becomes "Bar".
func TypeLabel(t models.ChartType) string {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return DefaultLabel
	}
	return cases.Title(language.English).String(s)
}

// Parse resolves a user-supplied type name, ignoring case and surrounding space.
func Parse(s string) (models.ChartType, bool) {
	t := models.ChartType(strings.ToLower(strings.TrimSpace(s)))
	return t, IsRegistered(t)
}

// FromOOXML maps an OOXML plot element tag to a chart type.
// Unmapped tags degrade to an unregistered type named after the tag.
func FromOOXML(tag string) models.ChartType {
	if t, ok := OOXMLTypeMap[tag]; ok {
		return t
	}
	return models.ChartType(strings.TrimSuffix(tag, "Chart"))
}
