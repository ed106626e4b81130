package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/registry"
)

// binding is a parsed --bind flag: chart index, axis and field path.
type binding struct {
	index int
	axis  models.Axis
	field string
}

// buildRequest describes one canvas session.
type buildRequest struct {
	charts       []string
	bindings     []binding
	importCharts string
}

// buildResult is printed by the build command.
type buildResult struct {
	dashcanvas.Snapshot
	ActiveTab dashcanvas.Tab `json:"active_tab"`
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		outputPath   string
		pretty       bool
		charts       []string
		binds        []string
		importCharts string
	)

	cmd := &cobra.Command{
		Use:   "build [dataset]",
		Short: "Place charts on a canvas and print the layout",
		Long: `build creates one chart per --chart flag, in order, placing each next to the
previous ones, applies --bind flags of the form INDEX:AXIS=FIELD (e.g. 0:x=region)
and prints the canvas snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd, args[0])
			if err != nil {
				return err
			}

			req := buildRequest{charts: charts, importCharts: importCharts}
			for _, b := range binds {
				parsed, err := parseBinding(b)
				if err != nil {
					return err
				}
				req.bindings = append(req.bindings, parsed)
			}

			result, err := a.build(ds, req)
			if err != nil {
				return err
			}
			return writeResult(cmd, result, outputPath, pretty)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringArrayVarP(&charts, "chart", "c", nil, "Chart type to add (repeatable)")
	flags.StringArrayVar(&binds, "bind", nil, "Field binding INDEX:AXIS=FIELD (repeatable)")
	flags.StringVar(&importCharts, "import-charts", "", "Import the charts of an xlsx workbook before adding --chart charts")
	flags.Float64("chart-width", dashcanvas.DefaultChartSize.Width, "Width of new charts")
	flags.Float64("chart-height", dashcanvas.DefaultChartSize.Height, "Height of new charts")

	_ = a.v.BindPFlag("canvas.chart_width", flags.Lookup("chart-width"))
	_ = a.v.BindPFlag("canvas.chart_height", flags.Lookup("chart-height"))
	return cmd
}

// build runs one canvas session over ds.
func (a *app) build(ds models.Dataset, req buildRequest) (*buildResult, error) {
	canvas := dashcanvas.New(a.config.CanvasOptions(a.logger))
	panel := dashcanvas.NewPanel(canvas)
	canvas.SetDataset(ds)

	if req.importCharts != "" {
		if _, err := canvas.ImportCharts(req.importCharts, a.config.LoadOptions(a.logger)); err != nil {
			return nil, fmt.Errorf("import failed: %w", err)
		}
	}

	for _, name := range req.charts {
		t, ok := registry.Parse(name)
		if !ok {
			a.logger.Warn("unknown chart type", zap.String("type", name))
		}
		canvas.AddChart(t, canvas.Dataset())
	}

	charts := canvas.Charts()
	for _, b := range req.bindings {
		if b.index < 0 || b.index >= len(charts) {
			return nil, fmt.Errorf("binding refers to chart %d, canvas has %d charts", b.index, len(charts))
		}
		canvas.BindField(charts[b.index].ID, b.axis, b.field)
	}

	return &buildResult{
		Snapshot:  canvas.Snapshot(),
		ActiveTab: panel.ActiveTab(),
	}, nil
}

// parseBinding parses INDEX:AXIS=FIELD.
func parseBinding(s string) (binding, error) {
	idx, rest, ok := strings.Cut(s, ":")
	if !ok {
		return binding{}, fmt.Errorf("invalid binding %q: expected INDEX:AXIS=FIELD", s)
	}
	axisStr, field, ok := strings.Cut(rest, "=")
	if !ok {
		return binding{}, fmt.Errorf("invalid binding %q: expected INDEX:AXIS=FIELD", s)
	}

	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return binding{}, fmt.Errorf("invalid binding %q: bad chart index: %w", s, err)
	}
	axis, ok := models.ParseAxis(axisStr)
	if !ok {
		return binding{}, fmt.Errorf("invalid binding %q: axis must be x or y", s)
	}

	return binding{index: index, axis: axis, field: strings.TrimSpace(field)}, nil
}
