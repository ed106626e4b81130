package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas"
)

func newTypesCmd(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the chart types on the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeResult(cmd, dashcanvas.Palette(), "", pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
