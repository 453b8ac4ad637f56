package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vuegraph/vuegraph/engine/ingest"
	"github.com/vuegraph/vuegraph/engine/render"
)

func newLinksCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "links <file.vue>",
		Short: "List the links extracted from a map file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			m, err := ingest.NewPreviewPipeline(nil)(cmd.Context(), args[0]).Unwrap()
			if err != nil {
				fatal("extract map", err)
			}
			header := []string{"SOURCE", "TARGET"}
			if verbose {
				header = []string{"NODE 1", "RELATIONSHIP", "NODE 2"}
			}
			fmt.Print(render.Table(header, render.LinkRows(m, verbose)))
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Render titles and arrow notation")
	return cmd
}
