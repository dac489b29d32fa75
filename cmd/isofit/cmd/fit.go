package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/arloliu/isofit"
	"github.com/arloliu/isofit/chart"
	"github.com/arloliu/isofit/dataset"
	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/config"
	"github.com/arloliu/isofit/isotherm"
	"github.com/arloliu/isofit/report"
	"github.com/arloliu/isofit/solver"
	"github.com/arloliu/isofit/statepoint"
)

var (
	fitData          string
	fitSheet         string
	fitComponents    []string
	fitMethod        string
	fitLoss          string
	fitMaxIterations int
	fitOut           string
	fitCompression   string
	fitNoPlots       bool
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit isotherms to a data table",
	Long: `Fit isotherms to a CSV or XLSX data table.

With one component the unary Langmuir model is fitted. With two components
both unary models are fitted on the pure points, then both binary models are
seeded by the combining rule and fitted on all points.

Columns default to "fugacity <name> [Pa]", "Q <name> [mmol/g]" and "T [K]".
Flags override the run file given by --config.

Examples:
  isofit fit --data h2s_ch4.xlsx --component H2S --component CH4
  isofit fit --config run.toml --compression zstd`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := fitConfig(cmd)
		if err != nil {
			printError("loading configuration", err)
			return err
		}

		_, err = runFit(cfg, cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr()))
		if err != nil {
			printError("fitting", err)
		}

		return err
	},
}

func init() {
	fitCmd.Flags().StringVarP(&fitData, "data", "d", "", "data table (.csv, .xlsx)")
	fitCmd.Flags().StringVar(&fitSheet, "sheet", "", "XLSX sheet (default: first sheet)")
	fitCmd.Flags().StringSliceVarP(&fitComponents, "component", "c", nil, "component name, once or twice")
	fitCmd.Flags().StringVar(&fitMethod, "method", "", "optimization method: "+strings.Join(solver.SupportedMethods(), ", "))
	fitCmd.Flags().StringVar(&fitLoss, "loss", "", "robust loss: linear, soft_l1, huber, cauchy, arctan")
	fitCmd.Flags().IntVar(&fitMaxIterations, "max-iterations", 0, "iteration cap")
	fitCmd.Flags().StringVarP(&fitOut, "out", "o", "", "output directory")
	fitCmd.Flags().StringVar(&fitCompression, "compression", "", "report compression: none, zstd, s2, lz4")
	fitCmd.Flags().BoolVar(&fitNoPlots, "no-plots", false, "skip plot output")

	rootCmd.AddCommand(fitCmd)
}

// fitConfig merges the run file and the command flags.
func fitConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Read(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = fitData
	}
	if flags.Changed("sheet") {
		cfg.Data.Sheet = fitSheet
	}
	if flags.Changed("component") {
		cfg.Data.Components = make([]config.ComponentConfig, len(fitComponents))
		for i, name := range fitComponents {
			cfg.Data.Components[i] = config.ComponentConfig{Name: name}
		}
	}
	if flags.Changed("method") {
		cfg.Solver.Method = fitMethod
	}
	if flags.Changed("loss") {
		cfg.Solver.Loss = fitLoss
	}
	if flags.Changed("max-iterations") {
		cfg.Solver.MaxIterations = fitMaxIterations
	}
	if flags.Changed("out") {
		cfg.Output.Dir = fitOut
	}
	if flags.Changed("compression") {
		cfg.Output.Compression = fitCompression
	}
	if fitNoPlots {
		cfg.Output.Plots = false
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fitted is one solved model with its output label.
type fitted struct {
	label string
	model *isotherm.Model
}

// runFit fits the configured data, prints a text report of every model to
// out and writes reports and plots to the output directory. It returns the
// paths of the written files.
func runFit(cfg *config.Config, out io.Writer, logger *slog.Logger) ([]string, error) {
	tbl, err := dataset.ReadFile(cfg.Data.Path, cfg.Data.Sheet)
	if err != nil {
		return nil, err
	}
	logger.Info("data loaded", "path", cfg.Data.Path, "rows", tbl.Len())

	s, err := isofit.NewSolver(
		solver.WithMethod(solver.MethodFromString(cfg.Solver.Method)),
		solver.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	opts := []isotherm.FitOption{
		isotherm.WithLoss(solver.LossFromString(cfg.Solver.Loss)),
		isotherm.WithLossScale(cfg.Solver.LossScale),
		isotherm.WithMaxIterations(cfg.Solver.MaxIterations),
		isotherm.WithLogger(logger),
	}

	var models []fitted
	switch len(cfg.Data.Components) {
	case 1:
		models, err = fitSingle(cfg, tbl, s, opts)
	case 2:
		models, err = fitPair(cfg, tbl, s, opts)
	default:
		err = fmt.Errorf("need 1 or 2 components: %w", errs.ErrInputShape)
	}
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var written []string
	for _, f := range models {
		paths, err := writeOutputs(cfg, f, out, logger)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

func fitSingle(cfg *config.Config, tbl *dataset.Table, s solver.Solver, opts []isotherm.FitOption) ([]fitted, error) {
	comp := cfg.Data.Components[0]
	cols, err := tbl.Columns(comp.Fugacity, comp.Loading, cfg.Data.Temperature)
	if err != nil {
		return nil, err
	}

	idx := dataset.PositiveIndices(cols[1])
	data, err := statepoint.NewUnary(
		dataset.Select(cols[0], idx),
		dataset.Select(cols[1], idx),
		dataset.Select(cols[2], idx),
		cfg.ReferenceOverride(),
	)
	if err != nil {
		return nil, err
	}
	m, err := isotherm.NewModel(isotherm.UnaryLangmuir{}, data)
	if err != nil {
		return nil, err
	}
	if err := m.Solve(s, opts...); err != nil {
		return nil, err
	}

	return []fitted{{label: comp.Name + "_unary", model: m}}, nil
}

func fitPair(cfg *config.Config, tbl *dataset.Table, s solver.Solver, opts []isotherm.FitOption) ([]fitted, error) {
	a, b := cfg.Data.Components[0], cfg.Data.Components[1]
	cols, err := tbl.Columns(a.Fugacity, a.Loading, b.Fugacity, b.Loading, cfg.Data.Temperature)
	if err != nil {
		return nil, err
	}

	res, err := isofit.FitMixture(isofit.MixtureData{
		A:           isofit.Component{Name: a.Name, Fugacity: cols[0], Loading: cols[1]},
		B:           isofit.Component{Name: b.Name, Fugacity: cols[2], Loading: cols[3]},
		Temperature: cols[4],
		Reference:   cfg.ReferenceOverride(),
	}, s, opts...)
	if err != nil {
		return nil, err
	}

	return []fitted{
		{label: a.Name + "_unary", model: res.UnaryA},
		{label: b.Name + "_unary", model: res.UnaryB},
		{label: a.Name + "_binary", model: res.BinaryA},
		{label: b.Name + "_binary", model: res.BinaryB},
	}, nil
}

func writeOutputs(cfg *config.Config, f fitted, out io.Writer, logger *slog.Logger) ([]string, error) {
	r, err := report.FromModel(f.model, f.label)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "== %s ==\n", f.label)
	if err := report.WriteText(out, r); err != nil {
		return nil, err
	}
	fmt.Fprintln(out)

	ct := cfg.Compression()
	path := filepath.Join(cfg.Output.Dir, f.label+".json"+ct.Extension())
	stats, err := report.WriteFile(path, r, report.WithCompression(ct))
	if err != nil {
		return nil, err
	}
	logger.Info("report written", "path", path, "bytes", stats.CompressedSize, "ratio", stats.CompressionRatio())
	written := []string{path}

	if !cfg.Output.Plots {
		return written, nil
	}

	pd, err := f.model.PlotData()
	if err != nil {
		return written, err
	}
	parity, err := chart.Parity(pd, f.label)
	if err != nil {
		return written, err
	}
	isoPlot, err := chart.Isotherm(pd, f.label, cfg.Data.FugacityUnit, cfg.Data.LoadingUnit)
	if err != nil {
		return written, err
	}
	plots := []struct {
		name string
		plot *plot.Plot
	}{
		{"parity", parity},
		{"isotherm", isoPlot},
	}
	for _, pl := range plots {
		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%s.%s", f.label, pl.name, cfg.Output.PlotFormat))
		if err := chart.Save(pl.plot, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}
