package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/isotherm"
)

func samplePlotData() isotherm.PlotData {
	return isotherm.PlotData{
		OwnFugacity:       []float64{100, 200, 400, 300},
		CompanionFugacity: []float64{0, 0, 0, 500},
		Temperature:       []float64{300, 300, 300, 300},
		FugacityStar:      []float64{0.25, 0.5, 1, 0.75},
		Theta:             []float64{0.3, 0.5, 1, 0.4},
		ThetaCalc:         []float64{0.31, 0.49, 0.98, 0.42},
		Loading:           []float64{0.6, 1, 2, 0.8},
		LoadingCalc:       []float64{0.62, 0.98, 1.96, 0.84},
		Pure:              []bool{true, true, true, false},
	}
}

func TestParity(t *testing.T) {
	p, err := Parity(samplePlotData(), "parity")
	require.NoError(t, err)
	assert.Equal(t, "parity", p.Title.Text)
	assert.InDelta(t, 1.05, p.X.Max, 1e-12)
	assert.InDelta(t, 1.05, p.Y.Max, 1e-12)

	path := filepath.Join(t.TempDir(), "parity.png")
	require.NoError(t, Save(p, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestIsotherm(t *testing.T) {
	data := samplePlotData()
	data.Pure = []bool{true, true, true, true}

	p, err := Isotherm(data, "isotherm", "Pa", "mmol/g")
	require.NoError(t, err)
	assert.Equal(t, "fugacity [Pa]", p.X.Label.Text)
	assert.Equal(t, "loading [mmol/g]", p.Y.Label.Text)

	path := filepath.Join(t.TempDir(), "isotherm.svg")
	require.NoError(t, Save(p, path))
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestPlotErrors(t *testing.T) {
	_, err := Parity(isotherm.PlotData{}, "empty")
	require.ErrorIs(t, err, errs.ErrInputShape)

	data := samplePlotData()
	data.Pure = data.Pure[:2]
	_, err = Isotherm(data, "short", "", "")
	require.ErrorIs(t, err, errs.ErrInputShape)

	p, err := Parity(samplePlotData(), "bad")
	require.NoError(t, err)
	require.Error(t, Save(p, filepath.Join(t.TempDir(), "plot.unknown")))
}
