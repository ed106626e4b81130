package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/parser"
	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/placement"
)

// DefaultConfigFileName is searched for when --config is not given.
const DefaultConfigFileName = "dashcanvas"

// Config is the merged flag, file, env and default configuration.
type Config struct {
	Canvas  CanvasConfig  `mapstructure:"canvas"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CanvasConfig sizes and places new charts.
type CanvasConfig struct {
	ChartWidth       float64 `mapstructure:"chart_width"`
	ChartHeight      float64 `mapstructure:"chart_height"`
	placement.Params `mapstructure:",squash"`
}

// DatasetConfig controls sample dataset loading.
type DatasetConfig struct {
	Format       string                       `mapstructure:"format"`
	Sheet        string                       `mapstructure:"sheet"`
	UsePrintArea bool                         `mapstructure:"use_print_area"`
	Table        parser.TableDetectionParams `mapstructure:"table"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// LoadConfig loads configuration from multiple sources with proper priority:
// 1. Command line flags (highest priority)
// 2. Environment variables (DASHCANVAS_*)
// 3. Config file
// 4. Defaults (lowest priority)
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/dashcanvas")
		}
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// Config file not found; using defaults + env vars + flags
	}

	v.SetEnvPrefix("DASHCANVAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	p := placement.DefaultParams()
	v.SetDefault("canvas.chart_width", dashcanvas.DefaultChartSize.Width)
	v.SetDefault("canvas.chart_height", dashcanvas.DefaultChartSize.Height)
	v.SetDefault("canvas.origin_x", p.OriginX)
	v.SetDefault("canvas.origin_y", p.OriginY)
	v.SetDefault("canvas.step", p.Step)
	v.SetDefault("canvas.max_x", p.MaxX)
	v.SetDefault("canvas.max_attempts", p.MaxAttempts)

	t := parser.DefaultTableParams()
	v.SetDefault("dataset.format", "")
	v.SetDefault("dataset.sheet", "")
	v.SetDefault("dataset.use_print_area", true)
	v.SetDefault("dataset.table.density_min", t.DensityMin)
	v.SetDefault("dataset.table.min_nonempty_cells", t.MinNonemptyCells)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// CanvasOptions converts the canvas section into dashcanvas options.
func (c *Config) CanvasOptions(logger *zap.Logger) dashcanvas.Options {
	return dashcanvas.Options{
		ChartSize: models.Size{Width: c.Canvas.ChartWidth, Height: c.Canvas.ChartHeight},
		Placement: c.Canvas.Params,
		Logger:    logger,
	}
}

// LoadOptions converts the dataset section into dashcanvas load options.
func (c *Config) LoadOptions(logger *zap.Logger) dashcanvas.LoadOptions {
	usePrintArea := c.Dataset.UsePrintArea
	return dashcanvas.LoadOptions{
		Format:       dashcanvas.Format(strings.ToLower(c.Dataset.Format)),
		Sheet:        c.Dataset.Sheet,
		UsePrintArea: &usePrintArea,
		Table:        c.Dataset.Table,
		Logger:       logger,
	}
}
