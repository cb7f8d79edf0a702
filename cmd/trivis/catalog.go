package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/trivis/pkg/visualizer"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available constructions and their keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeCatalog(cmd.OutOrStdout(), visualizer.DefaultCatalog())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func writeCatalog(w io.Writer, catalog visualizer.Catalog) {
	for _, g := range catalog {
		fmt.Fprintf(w, "%-14s %s\n", g.Key, g.Name)
		for _, e := range g.Entries() {
			fmt.Fprintf(w, "  %-26s %s\n", g.Key+"."+e.Key, e.Name)
		}
	}
}
