// Package report persists the results of isotherm fits.
//
// A Report is a self-contained snapshot of a solved model: its dimensionless
// and physical parameters, reference scales, metrics, solver diagnostics and
// the fitted points. Reports are stored as JSON, optionally compressed with
// one of the codecs of package compress, and can be rendered as a text table.
//
//	r, err := report.FromModel(m, "H2S")
//	if err != nil {
//	    return err
//	}
//	if _, err := report.WriteFile("h2s.json.zst", r); err != nil {
//	    return err
//	}
package report
