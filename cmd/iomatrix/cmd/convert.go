package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/iomatrix/jsonmat"
	"github.com/katalvlaran/iomatrix/numfmt"
	"github.com/katalvlaran/iomatrix/texmat"
)

var (
	convertPrecision int
	convertFixed     bool
	convertEnv       string
	convertIndent    int
	convertIndex     int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a matrix document between notations",
	Long: `Convert a matrix document between notations, dispatching each side by
file extension (.tex, .json, .csv).

Example:
  iomatrix convert system.tex system.csv
  iomatrix convert data.json out.tex --env bmatrix --precision 5
  iomatrix convert grid.csv grid.json --indent 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDoc(args[0])
		if err != nil {
			return err
		}
		arrays, err := parseByExt(args[0], text)
		if err != nil {
			return err
		}
		if len(arrays) == 0 {
			return fmt.Errorf("%s: no arrays found", args[0])
		}
		if convertIndex < 0 || convertIndex >= len(arrays) {
			return fmt.Errorf("--index %d out of range: document holds %d array(s)",
				convertIndex, len(arrays))
		}

		spec := numfmt.Sig(convertPrecision)
		if convertFixed {
			spec = numfmt.Fixed(convertPrecision)
		}
		out, err := serializeByExt(args[1], arrays[convertIndex], spec,
			texmat.Env(convertEnv), convertIndent)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", args[1], err)
		}
		cmd.Printf("%s (%s) -> %s\n", args[0], shapeOf(arrays[convertIndex]), args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntVarP(&convertPrecision, "precision", "p",
		numfmt.DefaultPrecision, "significant digits (or decimals with --fixed)")
	convertCmd.Flags().BoolVar(&convertFixed, "fixed", false,
		"interpret --precision as fixed decimals instead of significant digits")
	convertCmd.Flags().StringVarP(&convertEnv, "env", "e", string(texmat.EnvPlain),
		"typeset environment for .tex output (matrix|pmatrix|bmatrix|vmatrix|Vmatrix)")
	convertCmd.Flags().IntVar(&convertIndent, "indent", jsonmat.DefaultIndent,
		"indent width for .json output (0 for compact)")
	convertCmd.Flags().IntVarP(&convertIndex, "index", "i", 0,
		"which parsed array to convert when the source holds several")
}
