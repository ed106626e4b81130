package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/fields"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

func newFieldsCmd(a *app) *cobra.Command {
	var (
		pretty     bool
		withValues bool
		sorted     bool
		paths      []string
	)

	cmd := &cobra.Command{
		Use:   "fields [dataset]",
		Short: "List the field paths of a sample dataset",
		Long: `fields flattens the first record of the dataset into dotted field paths.
Use "-" to read json or yaml from stdin together with --format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd, args[0])
			if err != nil {
				return err
			}

			if len(paths) > 0 {
				first, _ := ds.First()
				return writeResult(cmd, previewPaths(first, paths), "", pretty)
			}
			if withValues {
				first, _ := ds.First()
				return writeResult(cmd, fields.Flatten(first), "", pretty)
			}
			if sorted {
				return writeResult(cmd, fields.SortedPaths(ds), "", pretty)
			}
			return writeResult(cmd, fields.Paths(ds), "", pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&withValues, "values", false, "Include the sample value of each field")
	cmd.Flags().BoolVar(&sorted, "sort", false, "Sort field paths lexically instead of record order")
	cmd.Flags().StringArrayVar(&paths, "path", nil, "Preview the sample value at a field path (repeatable)")
	return cmd
}

// previewPaths resolves each path in rec. Missing paths have a nil value.
func previewPaths(rec models.Record, paths []string) []fields.Leaf {
	leaves := make([]fields.Leaf, len(paths))
	for i, p := range paths {
		v, _ := fields.Lookup(rec, p)
		leaves[i] = fields.Leaf{Path: p, Value: v}
	}
	return leaves
}

// loadDataset reads the dataset argument; "-" means stdin.
func (a *app) loadDataset(cmd *cobra.Command, path string) (models.Dataset, error) {
	opts := a.config.LoadOptions(a.logger)

	if path == "-" {
		format := opts.Format
		if format == dashcanvas.FormatAuto {
			format = dashcanvas.FormatJSON
		}
		return dashcanvas.ReadDataset(cmd.InOrStdin(), "stdin", format)
	}

	ds, err := dashcanvas.LoadDataset(path, opts)
	if err != nil {
		return nil, fmt.Errorf("loading dataset failed: %w", err)
	}
	return ds, nil
}
