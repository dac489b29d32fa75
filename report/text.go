package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders r as aligned plain-text tables.
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if r.Component != "" {
		fmt.Fprintf(tw, "Component:\t%s\n", r.Component)
	}
	fmt.Fprintf(tw, "Model:\t%s\n", r.Model)
	fmt.Fprintf(tw, "Formula:\t%s\n", r.Formula)
	fmt.Fprintf(tw, "Reference:\tf_ref=%g  q_ref=%g  T_ref=%g\n",
		r.Reference.Fugacity, r.Reference.Loading, r.Reference.Temperature)
	fmt.Fprintf(tw, "Data:\t%d points, fingerprint %s\n", len(r.Points), r.Fingerprint)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PARAMETER\tVALUE")
	for _, p := range r.Parameters {
		fmt.Fprintf(tw, "%s\t%.6g\n", p.Name, p.Value)
	}

	if len(r.Physical) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "PHYSICAL\tVALUE\tUNIT")
		for _, p := range r.Physical {
			fmt.Fprintf(tw, "%s\t%.6g\t%s\n", p.Name, p.Value, p.Unit)
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Objective:\t%.6g\n", r.Metrics.Objective)
	if r.Metrics.RSquared != nil {
		fmt.Fprintf(tw, "R²:\t%.6f\n", *r.Metrics.RSquared)
	} else {
		fmt.Fprintf(tw, "R²:\tundefined (constant loading)\n")
	}
	fmt.Fprintf(tw, "RMSE:\t%.6g\n", r.Metrics.RMSE)
	fmt.Fprintf(tw, "Solver:\t%s, %d iterations, %d evaluations\n",
		r.Solver.Status, r.Solver.Iterations, r.Solver.Evaluations)

	return tw.Flush()
}
