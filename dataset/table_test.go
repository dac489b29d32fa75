package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arloliu/isofit/errs"
)

const mixtureCSV = `fugacity H2S [Pa],fugacity CH4 [Pa],Q H2S [mmol/g],Q CH4 [mmol/g],T [K]
# pure H2S
1000,0,0.8,0,300
5000,0,2.1,0,300

0,1e-13,0,0.0,300
2000, 40000 ,1.2,0.9,300
0,50000,0,1.4,300
`

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(mixtureCSV))
	require.NoError(t, err)

	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, "T [K]", tbl.Header()[4])

	cols, err := tbl.Columns("fugacity H2S [Pa]", "fugacity ch4 [pa]", "Q H2S [mmol/g]")
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 5000, 0, 2000, 0}, cols[0])
	assert.Equal(t, []float64{0, 0, 1e-13, 40000, 50000}, cols[1])

	idx := PositiveIndices(cols[2])
	assert.Equal(t, []int{0, 1, 3}, idx)
	assert.Equal(t, []float64{0.8, 2.1, 1.2}, Select(cols[2], idx))
}

func TestColumnErrors(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1,2\n3\n4,x\n"))
	require.NoError(t, err)

	_, err = tbl.Column("c")
	require.ErrorIs(t, err, errs.ErrMissingColumn)

	_, err = tbl.Column("b")
	require.ErrorIs(t, err, errs.ErrInvalidValue)

	a, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 4}, a)

	_, err = NewTable(nil)
	require.ErrorIs(t, err, errs.ErrInputShape)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixture.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"fugacity CO2 [Pa]", "fugacity N2 [Pa]", "Q CO2 [mmol/g]", "T [K]"},
		{1500.25, 0, 1.123456789012, 298.15},
		{3000, 1e-13, 2.5, 298.15},
		{4500, 90000, 2.75, 323.15},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	q, err := tbl.Column("Q CO2 [mmol/g]")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.123456789012, 2.5, 2.75}, q)

	fj, err := tbl.Column("fugacity N2 [Pa]")
	require.NoError(t, err)
	assert.Equal(t, 1e-13, fj[1])

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	tbl, err = ReadXLSX(file, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, err = ReadFile(path, "Missing")
	require.Error(t, err)
}

func TestReadFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(mixtureCSV), 0o600))

	tbl, err := ReadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Len())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}
