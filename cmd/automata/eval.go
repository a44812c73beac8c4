package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <automataType> <input>",
	Short: "Evaluate an input string",
	Long: `Runs the input through the chosen automaton and prints a report.
On a terminal the report is rendered as Markdown; with --json the raw result is printed.`,
	Example: `  automata eval custom xxyy
  automata eval binario 0101 --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		engine := automata.New()
		out, err := engine.Process(cmd.Context(), args[1], args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		report := tui.Report(out)
		if f, ok := w.(*os.File); ok && tui.IsTerminal(f) {
			if rendered, err := tui.NewRenderer()(report); err == nil {
				report = rendered
			}
		}
		_, err = fmt.Fprint(w, report)
		return err
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("json", false, "Print the result as JSON")
}
