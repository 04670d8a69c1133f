package cmd

import (
	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <in>",
	Short: "List the arrays found in a matrix document",
	Long: `List the arrays found in a matrix document, with their shapes, in
source order.

Example:
  iomatrix extract notes.tex`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDoc(args[0])
		if err != nil {
			return err
		}
		arrays, err := parseByExt(args[0], text)
		if err != nil {
			return err
		}

		for i, m := range arrays {
			cmd.Printf("[%d] %s\n", i, shapeOf(m))
		}
		if len(arrays) == 0 {
			cmd.Println("no arrays found")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
