// Package main provides the CLI entry point for dashcanvas.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/output"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	config  *Config
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "dashcanvas",
		Short: "Lay out dashboard charts over a sample dataset",
		Long: `dashcanvas places chart widgets on a dashboard canvas without overlap,
binds them to fields of a sample dataset (json, yaml or xlsx) and prints the
resulting canvas as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./dashcanvas.yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")
	flags.String("format", "", "Dataset format: json, yaml, xlsx (default: from extension)")
	flags.String("sheet", "", "Worksheet to read from xlsx datasets (default: first sheet)")

	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("dataset.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("dataset.sheet", flags.Lookup("sheet"))

	rootCmd.AddCommand(
		newTypesCmd(a),
		newFieldsCmd(a),
		newBuildCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	config, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := buildLogger(config.Logging)
	if err != nil {
		return err
	}
	a.config = config
	a.logger = logger
	return nil
}

// writeResult prints v as JSON to outputPath, or to the command output.
func writeResult(cmd *cobra.Command, v any, outputPath string, pretty bool) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
