package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iafilius/CoevolutionPlot/src/report"
	"github.com/iafilius/CoevolutionPlot/src/results"
	"github.com/iafilius/CoevolutionPlot/src/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// writeDataDir creates one small result file per default series.
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for i, s := range types.DefaultSeries() {
		var b strings.Builder
		b.WriteString("generation,games,p1,p2,p3\n")
		for g := 0; g <= 40; g++ {
			base := 0.6 + 0.05*float64(i) + 0.002*float64(g)
			b.WriteString(strings.Join([]string{
				itoa(g), itoa(g * 5000),
				ftoa(base), ftoa(base + 0.01), ftoa(base - 0.01),
			}, ","))
			b.WriteByte('\n')
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, s.File), []byte(b.String()), 0o644))
	}
	return dir
}

func itoa(i int) string { return ftoa(float64(i)) }

func ftoa(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootWritesChart(t *testing.T) {
	data := writeDataDir(t)
	outDir := t.TempDir()
	chart := filepath.Join(outDir, "5_star_plot.svg")
	xlsx := filepath.Join(outDir, "summary.xlsx")

	_, logs, err := execute(t, "--data-dir", data, "--output", chart, "--xlsx", xlsx)
	require.NoError(t, err)

	b, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("<svg")))
	for _, s := range types.DefaultSeries() {
		assert.Contains(t, string(b), s.Label)
	}
	assert.FileExists(t, xlsx)
	assert.Contains(t, logs, "wrote "+chart)
}

func TestRootPNGFromConfigFile(t *testing.T) {
	data := writeDataDir(t)
	outDir := t.TempDir()
	cfgPath := filepath.Join(outDir, "starplot.yaml")
	chart := filepath.Join(outDir, "plot.png")
	cfg := "data_dir: " + data + "\noutput: " + chart + "\nfigure:\n  width: 600\n  height: 400\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	b, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}

func TestRootMissingSeriesFile(t *testing.T) {
	data := writeDataDir(t)
	require.NoError(t, os.Remove(filepath.Join(data, "cel.csv")))
	chart := filepath.Join(t.TempDir(), "plot.svg")

	_, _, err := execute(t, "--data-dir", data, "--output", chart)
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrFileNotFound))
	assert.Contains(t, err.Error(), "1-Coev")
	assert.NoFileExists(t, chart)
}

func TestRootParseErrorWritesNothing(t *testing.T) {
	data := writeDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(data, "2cel.csv"), []byte("h,g,p\n0,100,abc\n"), 0o644))
	chart := filepath.Join(t.TempDir(), "plot.svg")

	_, _, err := execute(t, "--data-dir", data, "--output", chart)
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrParse))
	assert.NoFileExists(t, chart)
}

func TestRootRejectsBadOutput(t *testing.T) {
	_, _, err := execute(t, "--data-dir", writeDataDir(t), "--output", "plot.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestSummaryJSON(t *testing.T) {
	data := writeDataDir(t)
	out, _, err := execute(t, "summary", "--data-dir", data, "--format", "json")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Len(t, s.Series, 5)
	assert.Equal(t, "1-Evol-RS", s.Series[0].Label)
	assert.Equal(t, 41, s.Series[0].Rows)
	assert.InDelta(t, 200.0, s.Series[0].FinalGames, 1e-9)
	assert.Equal(t, 3, s.Series[4].Box.N)
}

func TestSummaryUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "summary", "--data-dir", writeDataDir(t), "--format", "csv")
	assert.Error(t, err)
}

func TestRootFlagsBoundToConfig(t *testing.T) {
	require.NotPanics(t, func() { newRootCmd() })

	data := writeDataDir(t)
	chart := filepath.Join(t.TempDir(), "plot.svg")
	_, logs, err := execute(t, "--data-dir", data, "--output", chart, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.FileExists(t, chart)
	assert.Contains(t, logs, `"level":"debug"`)
	assert.Contains(t, logs, `"message":"load series took`)
}
