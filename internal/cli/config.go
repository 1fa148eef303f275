package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/annotick/pkg/annot"
	"github.com/matzehuels/annotick/pkg/errors"
)

// Config is the TOML configuration file for the demo command. Every field
// has a sensible default; a config file only needs the keys it overrides.
// Command-line flags win over file values.
type Config struct {
	Annotate AnnotateConfig `toml:"annotate"`
	Chart    ChartConfig    `toml:"chart"`
}

// AnnotateConfig mirrors the annotation options.
type AnnotateConfig struct {
	RelLabelSize float64 `toml:"rel_label_size"`
	PerpShift    float64 `toml:"perp_shift"`
	RelTickSize  float64 `toml:"rel_tick_size"`
	Resolution   int     `toml:"resolution"`
	Speed        float64 `toml:"speed"`
	ExpandAxis   float64 `toml:"expand_axis"`
}

// ChartConfig controls the demo chart geometry in millimeters.
type ChartConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Margin   float64 `toml:"margin"`
	FontSize float64 `toml:"font_size"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	return Config{
		Annotate: AnnotateConfig{
			RelLabelSize: annot.DefaultRelLabelSize,
			PerpShift:    annot.DefaultPerpShift,
			RelTickSize:  annot.DefaultRelTickSize,
			Resolution:   annot.DefaultResolution,
			Speed:        annot.DefaultSpeed,
		},
		Chart: ChartConfig{
			Width:    160,
			Height:   120,
			Margin:   20,
			FontSize: 8,
		},
	}
}

// loadConfig reads a TOML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config file")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file")
	}
	return cfg, nil
}

// options converts the annotate section into library options.
func (c Config) options() []annot.Option {
	return []annot.Option{
		annot.WithRelLabelSize(c.Annotate.RelLabelSize),
		annot.WithPerpShift(c.Annotate.PerpShift),
		annot.WithRelTickSize(c.Annotate.RelTickSize),
		annot.WithResolution(c.Annotate.Resolution),
		annot.WithSpeed(c.Annotate.Speed),
		annot.WithExpand(c.Annotate.ExpandAxis),
	}
}
