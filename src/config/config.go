// Package config loads run settings from defaults, an optional YAML file, STARPLOT_* environment
// variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/iafilius/CoevolutionPlot/src/logging"
	"github.com/iafilius/CoevolutionPlot/src/render"
	"github.com/iafilius/CoevolutionPlot/src/types"
)

// EnvPrefix prefixes every environment override, e.g. STARPLOT_DATA_DIR.
const EnvPrefix = "STARPLOT"

// Config holds the settings of one run.
type Config struct {
	// DataDir holds the series files; empty means "data" next to the executable.
	DataDir     string         `mapstructure:"data_dir" yaml:"data_dir"`
	Output      string         `mapstructure:"output" yaml:"output" validate:"required,chartfile"`
	SummaryXLSX string         `mapstructure:"summary_xlsx" yaml:"summary_xlsx" validate:"omitempty,endswith=.xlsx"`
	Log         LogConfig      `mapstructure:"log" yaml:"log"`
	Figure      FigureConfig   `mapstructure:"figure" yaml:"figure"`
	Series      []types.Series `mapstructure:"series" yaml:"series" validate:"required,min=1,dive"`
}

// LogConfig selects verbosity and output encoding of the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,loglevel"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
}

// FigureConfig sizes the rendered figure in pixels.
type FigureConfig struct {
	Width  int `mapstructure:"width" yaml:"width" validate:"min=200,max=10000"`
	Height int `mapstructure:"height" yaml:"height" validate:"min=200,max=10000"`
}

// DefaultConfig returns the settings of the standard five-series run.
func DefaultConfig() *Config {
	o := render.DefaultOptions()
	return &Config{
		Output: render.DefaultOutputFile,
		Log:    LogConfig{Level: "info", Format: "console"},
		Figure: FigureConfig{Width: o.Width, Height: o.Height},
		Series: types.DefaultSeries(),
	}
}

// New returns a viper instance carrying the defaults and environment binding. Callers may bind
// flags to it before passing it to Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("output", d.Output)
	v.SetDefault("summary_xlsx", d.SummaryXLSX)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("figure.width", d.Figure.Width)
	v.SetDefault("figure.height", d.Figure.Height)
	v.SetDefault("series", d.Series)
}

// Load reads configPath (if non-empty) into v and returns the validated configuration.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		logging.Debugf("[config] loaded %s", v.ConfigFileUsed())
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

var validate = newValidator()

// newValidator panics when a custom rule cannot be registered; the rules are fixed at build time.
func newValidator() *validator.Validate {
	v := validator.New()
	rules := map[string]validator.Func{
		"chartfile": isChartFile,
		"loglevel": func(fl validator.FieldLevel) bool {
			return logging.ValidLevel(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("config: register %s validation: %v", tag, err))
		}
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func isChartFile(fl validator.FieldLevel) bool {
	_, err := render.FormatFromPath(fl.Field().String())
	return err == nil
}

// Validate checks field constraints and that series labels are unique.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	seen := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		if seen[s.Label] {
			return fmt.Errorf("duplicate series label %q", s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "chartfile":
		return fmt.Sprintf("%s %q must end in .svg or .png", field, fe.Value())
	case "loglevel":
		return fmt.Sprintf("%s %q is not one of debug, info, warn, error", field, fe.Value())
	case "endswith":
		return fmt.Sprintf("%s %q must end in %s", field, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
}

// RenderOptions maps the figure settings onto renderer options.
func (c *Config) RenderOptions() render.Options {
	o := render.DefaultOptions()
	o.Width = c.Figure.Width
	o.Height = c.Figure.Height
	return o
}

// OutputPath returns the chart path; relative paths are kept relative to the working directory.
func (c *Config) OutputPath() string {
	return filepath.Clean(c.Output)
}
