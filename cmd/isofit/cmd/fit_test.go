package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/isofit/internal/config"
	"github.com/arloliu/isofit/report"
)

// writeMixtureCSV writes noise-free binary Langmuir data for CO2 and N2.
// Without mixture only the pure CO2 rows are written.
func writeMixtureCSV(t *testing.T, dir string, mixture bool) string {
	t.Helper()

	k := func(k0, dH, temp float64) float64 { return k0 * math.Exp(-dH/(8.314*temp)) }
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	var sb strings.Builder
	sb.WriteString("fugacity CO2 [Pa],fugacity N2 [Pa],Q CO2 [mmol/g],Q N2 [mmol/g],T [K]\n")
	add := func(fa, fb, temp float64) {
		ka := k(1e-5, -20000, temp) * fa
		kb := k(1e-5, -15000, temp) * fb
		row := []string{
			format(fa), format(fb),
			format(3 * ka / (1 + ka + kb)), format(2 * kb / (1 + ka + kb)),
			format(temp),
		}
		sb.WriteString(strings.Join(row, ",") + "\n")
	}
	for _, temp := range []float64{300, 350} {
		for _, f := range []float64{5, 20, 50, 100, 200} {
			add(f, 0, temp)
			if mixture {
				add(0, f, temp)
			}
		}
		if !mixture {
			continue
		}
		for _, pair := range [][2]float64{{10, 50}, {50, 50}, {100, 100}, {20, 150}, {150, 20}} {
			add(pair[0], pair[1], temp)
		}
	}

	path := filepath.Join(dir, "co2_n2.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	return path
}

func testConfig(t *testing.T, components ...string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Data.Path = writeMixtureCSV(t, dir, len(components) > 1)
	for _, name := range components {
		cfg.Data.Components = append(cfg.Data.Components, config.ComponentConfig{Name: name})
	}
	cfg.Solver.Loss = "linear"
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunFitMixture(t *testing.T) {
	cfg := testConfig(t, "CO2", "N2")
	cfg.Output.Compression = "zstd"

	var out bytes.Buffer
	written, err := runFit(cfg, &out, discardLogger())
	require.NoError(t, err)

	// four reports, each with two plots
	require.Len(t, written, 12)
	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Contains(t, out.String(), "== CO2_binary ==")
	assert.Contains(t, out.String(), "binary-langmuir")

	r, err := report.ReadFile(filepath.Join(cfg.Output.Dir, "N2_binary.json.zst"))
	require.NoError(t, err)
	assert.Equal(t, "N2_binary", r.Component)
	require.NotNil(t, r.Metrics.RSquared)
	assert.InDelta(t, 1.0, *r.Metrics.RSquared, 1e-4)
}

func TestRunFitSingle(t *testing.T) {
	cfg := testConfig(t, "CO2")
	cfg.Output.Plots = false

	var out bytes.Buffer
	written, err := runFit(cfg, &out, discardLogger())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(cfg.Output.Dir, "CO2_unary.json")}, written)

	r, err := report.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "langmuir", r.Model)
	assert.Len(t, r.Points, 10)
}

func TestRunFitMissingColumn(t *testing.T) {
	cfg := testConfig(t, "H2S")
	_, err := runFit(cfg, io.Discard, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fugacity H2S [Pa]")
}

func TestShowCommand(t *testing.T) {
	cfg := testConfig(t, "CO2")
	cfg.Output.Plots = false
	written, err := runFit(cfg, io.Discard, discardLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", written[0]})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Component:")
	assert.Contains(t, out.String(), "CO2_unary")
	assert.Contains(t, out.String(), "q_mi")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "isofit v"+Version)
	assert.Contains(t, out.String(), "binary-langmuir")
}
