package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/isofit/errs"
)

// Table is a parsed data table with a header row.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable builds a table from raw records. The first record is the header.
// Records whose cells are all blank are dropped.
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("table has no header: %w", errs.ErrInputShape)
	}

	t := &Table{header: make([]string, len(records[0]))}
	for i, h := range records[0] {
		t.header[i] = strings.TrimSpace(h)
	}
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}

	return t, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// Header returns the column names.
func (t *Table) Header() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)

	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Column returns the named column parsed as numbers. Names are matched
// case-insensitively after trimming spaces.
//
// Returns:
//   - []float64: One value per data row
//   - error: errs.ErrMissingColumn for an unknown name, errs.ErrInvalidValue
//     for an empty or non-numeric cell
func (t *Table) Column(name string) ([]float64, error) {
	idx := -1
	for i, h := range t.header {
		if strings.EqualFold(h, strings.TrimSpace(name)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%q, have %q: %w", name, t.header, errs.ErrMissingColumn)
	}

	out := make([]float64, len(t.rows))
	for r, rec := range t.rows {
		if idx >= len(rec) {
			return nil, fmt.Errorf("row %d has no %q cell: %w", r+2, name, errs.ErrInvalidValue)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w: %w", r+2, name, errs.ErrInvalidValue, err)
		}
		out[r] = v
	}

	return out, nil
}

// Columns returns several columns in the order of names.
func (t *Table) Columns(names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}

	return out, nil
}

// ReadCSV parses comma-separated data. Rows may have different lengths.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return NewTable(records)
}

// ReadXLSX parses one sheet of an XLSX workbook. An empty sheet name selects
// the first sheet. Cell values are read unformatted so no precision is lost.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (*Table, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return NewTable(rows)
}

// ReadFile reads a table from path. Files ending in .xlsx or .xlsm are read
// as workbooks using sheet, anything else as CSV.
func ReadFile(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open xlsx: %w", err)
		}
		defer f.Close()

		return readWorkbook(f, sheet)
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		return ReadCSV(file)
	}
}
