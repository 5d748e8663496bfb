package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/CoevolutionPlot/src/render"
	"github.com/iafilius/CoevolutionPlot/src/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsMatchFixedRun(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, render.DefaultOutputFile, cfg.Output)
	assert.Equal(t, types.DefaultSeries(), cfg.Series)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1000, cfg.Figure.Width)
	assert.Equal(t, 1000, cfg.Figure.Height)
	assert.Empty(t, cfg.SummaryXLSX)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data_dir: /srv/results
output: compare.png
summary_xlsx: summary.xlsx
figure:
  width: 1600
series:
  - file: a.csv
    label: A
  - file: b.csv
    label: B
`)
	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/results", cfg.DataDir)
	assert.Equal(t, "compare.png", cfg.Output)
	assert.Equal(t, "summary.xlsx", cfg.SummaryXLSX)
	assert.Equal(t, 1600, cfg.Figure.Width)
	assert.Equal(t, 1000, cfg.Figure.Height, "unset keys keep their defaults")
	assert.Equal(t, []types.Series{{File: "a.csv", Label: "A"}, {File: "b.csv", Label: "B"}}, cfg.Series)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "output: from-file.svg\n")
	t.Setenv("STARPLOT_OUTPUT", "from-env.svg")
	t.Setenv("STARPLOT_LOG_LEVEL", "debug")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.svg", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "output: chart.pdf\n")
	_, err = Load(New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".svg or .png")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "default config is valid", mutate: func(c *Config) {}},
		{name: "png output", mutate: func(c *Config) { c.Output = "out/plot.PNG" }},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, wantErr: "output is required"},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "tiny figure", mutate: func(c *Config) { c.Figure.Width = 10 }, wantErr: "figure.width"},
		{name: "bad workbook name", mutate: func(c *Config) { c.SummaryXLSX = "summary.csv" }, wantErr: ".xlsx"},
		{name: "no series", mutate: func(c *Config) { c.Series = nil }, wantErr: "series"},
		{name: "series without label", mutate: func(c *Config) { c.Series[0].Label = "" }, wantErr: "series[0].label"},
		{name: "duplicate label", mutate: func(c *Config) { c.Series[1].Label = c.Series[0].Label }, wantErr: "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderOptions(t *testing.T) {
	c := DefaultConfig()
	c.Figure = FigureConfig{Width: 1200, Height: 600}
	o := c.RenderOptions()
	assert.Equal(t, 1200, o.Width)
	assert.Equal(t, 600, o.Height)
	assert.Equal(t, render.DefaultOptions().XLabel, o.XLabel)
}

func TestNewValidator_CustomRules(t *testing.T) {
	var v interface{ Struct(interface{}) error }
	require.NotPanics(t, func() { v = newValidator() })

	type target struct {
		Chart string `validate:"chartfile"`
		Level string `validate:"loglevel"`
	}
	assert.NoError(t, v.Struct(target{Chart: "a.svg", Level: "warn"}))
	assert.Error(t, v.Struct(target{Chart: "a.gif", Level: "warn"}))
	assert.Error(t, v.Struct(target{Chart: "a.png", Level: "chatty"}))
}
