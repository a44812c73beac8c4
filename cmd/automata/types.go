package main

import (
	"fmt"

	"github.com/aretw0/automata"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available automata",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range automata.New().Types() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-24s %s\n", d.ID, d.Name, d.Description); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
