package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/isofit/report"
)

var showCmd = &cobra.Command{
	Use:   "show <report>",
	Short: "Print a saved fit report",
	Long: `Print a report written by "isofit fit". Compressed reports
(.zst, .s2, .lz4) are detected by file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := report.ReadFile(args[0])
		if err != nil {
			printError("reading report", err)
			return err
		}

		return report.WriteText(cmd.OutOrStdout(), r)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
