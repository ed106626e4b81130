// Package dashcanvas provides the chart canvas layout engine: chart placement,
// field binding and sample dataset loading for a drag-and-drop dashboard builder.
package dashcanvas

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/parser"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/placement"
)

// DefaultChartSize is the size given to charts created from the palette.
var DefaultChartSize = models.Size{Width: 450, Height: 400}

// Options configures a Canvas.
type Options struct {
	// ChartSize is the size of new charts. Zero means DefaultChartSize.
	ChartSize models.Size
	// Placement configures the grid scan. The zero value means placement.DefaultParams().
	Placement placement.Params
	// Logger receives degradation events. Nil disables logging.
	Logger *zap.Logger
	// NewID generates chart ids. Nil means random UUIDs.
	NewID func() string
}

// DefaultOptions returns default canvas options.
func DefaultOptions() Options {
	return Options{
		ChartSize: DefaultChartSize,
		Placement: placement.DefaultParams(),
	}
}

func (o Options) withDefaults() Options {
	if o.ChartSize.Width <= 0 || o.ChartSize.Height <= 0 {
		o.ChartSize = DefaultChartSize
	}
	if o.Placement == (placement.Params{}) {
		o.Placement = placement.DefaultParams()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// Format is a sample dataset file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// LoadOptions configures dataset loading.
type LoadOptions struct {
	// Format overrides extension-based detection.
	Format Format
	// Sheet is the worksheet to read from xlsx files. Empty means the first sheet.
	Sheet string
	// UsePrintArea restricts xlsx loading to the sheet's print area when one is defined.
	// If nil, defaults to true.
	UsePrintArea *bool
	// Table tunes table detection in xlsx sheets. The zero value means parser.DefaultTableParams().
	Table parser.TableDetectionParams
	// Logger receives skipped-input warnings. Nil disables logging.
	Logger *zap.Logger
}

// ShouldUsePrintArea returns whether to restrict loading to print areas.
func (o LoadOptions) ShouldUsePrintArea() bool {
	if o.UsePrintArea != nil {
		return *o.UsePrintArea
	}
	return true
}

func (o LoadOptions) tableParams() parser.TableDetectionParams {
	if o.Table == (parser.TableDetectionParams{}) {
		return parser.DefaultTableParams()
	}
	return o.Table
}

func (o LoadOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
