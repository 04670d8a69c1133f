package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iomatrix",
	Short: "iomatrix - convert matrices between LaTeX, JSON and CSV notations",
	Long: `iomatrix converts numeric matrices and vectors between three textual
notations — typeset (LaTeX matrix environments), structured (JSON nested
lists) and tabular (CSV) — preserving values, including NaN and ±Inf.

The codec for each side is chosen by file extension: .tex, .json, .csv.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
