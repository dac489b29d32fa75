package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "isofit",
	Short: "Fit adsorption isotherms in dimensionless form",
	Long: `isofit fits Langmuir-type adsorption isotherms to experimental data.

Fugacity, loading and temperature are scaled by reference values before
fitting. Single-component data is fitted with the unary Langmuir model;
two-component data is fitted with unary models on the pure points and
binary models seeded from them by the combining rule.

Commands:
  fit      - fit a data table and write reports and plots
  show     - print a saved report
  version  - print version information`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "run file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
