package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <automataType>",
	Short: "Export the transition graph of an automaton",
	Long: `Outputs a Mermaid diagram (graph LR) of the automaton, or its JSON description.
With --input the states visited by that input are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		input, _ := cmd.Flags().GetString("input")

		engine := automata.New()
		diagram, err := engine.Diagram(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(diagram)
		case "mermaid":
			var overlay *graph.GraphOverlay
			if input != "" {
				out, err := engine.Process(cmd.Context(), input, args[0])
				if err != nil {
					return err
				}
				overlay = graph.OverlayFromResult(diagram.Initial, out.Result)
			}
			_, err := fmt.Fprint(w, graph.GenerateMermaid(diagram, overlay))
			return err
		default:
			return fmt.Errorf("unknown format %q: use mermaid or json", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("format", "mermaid", "Output format: mermaid or json")
	graphCmd.Flags().String("input", "", "Highlight the path taken by this input")
}
