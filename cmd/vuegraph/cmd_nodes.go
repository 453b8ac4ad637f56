package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vuegraph/vuegraph/engine/ingest"
	"github.com/vuegraph/vuegraph/engine/render"
)

func newNodesCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "nodes <file.vue>",
		Short: "List the nodes extracted from a map file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			m, err := ingest.NewPreviewPipeline(nil)(cmd.Context(), args[0]).Unwrap()
			if err != nil {
				fatal("extract map", err)
			}
			header := []string{"ID"}
			if verbose {
				header = []string{"ID", "TITLE", "RESOURCE"}
			}
			fmt.Print(render.Table(header, render.NodeRows(m, verbose)))
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include titles and resource types")
	return cmd
}
