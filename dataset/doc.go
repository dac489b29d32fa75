// Package dataset reads tabular adsorption data into column vectors.
//
// Tables come from CSV files or from a sheet of an XLSX workbook. The first
// row holds the column names, e.g. "fugacity H2S [Pa]" or "T [K]", and every
// following non-empty row holds numbers.
package dataset
