package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arloliu/isofit/isotherm"
	"github.com/arloliu/isofit/report"
	"github.com/arloliu/isofit/solver"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "isofit v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  Report:     v%d\n", report.Version)
		fmt.Fprintf(out, "  Models:     %v\n", isotherm.SupportedModels())
		fmt.Fprintf(out, "  Methods:    %v\n", solver.SupportedMethods())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
