package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vuegraph/vuegraph/engine/graph"
	"github.com/vuegraph/vuegraph/engine/ingest"
	"github.com/vuegraph/vuegraph/pkg/neo"
)

func newExportCmd() *cobra.Command {
	var dryRun, noVerify bool
	cmd := &cobra.Command{
		Use:   "export <file.vue>",
		Short: "Export a map file into Neo4j and verify the import",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			if dryRun {
				m, err := ingest.NewPreviewPipeline(nil)(ctx, args[0]).Unwrap()
				if err != nil {
					fatal("extract map", err)
				}
				fmt.Printf("dry run: %q extracts to %d nodes and %d links (%d unsupported resources)\n",
					m.Label, m.Stats.Nodes, m.Stats.Links, m.Stats.Unsupported)
				return
			}

			cfg := connConfig()
			driver, err := neo.Connect(ctx, cfg)
			if err != nil {
				fatal("connect", err)
			}
			defer driver.Close(ctx)

			deps := ingest.Deps{
				Store:  graph.New(driver, cfg.Database),
				Logger: slog.Default(),
			}
			pipeline := ingest.NewPipeline(deps)
			if noVerify {
				pipeline = ingest.NewExportPipeline(deps)
			}

			report, err := pipeline(ctx, args[0]).Unwrap()
			if err != nil {
				fatal("export", err)
			}

			fmt.Printf("run %s: %d nodes, %d relationships\n",
				report.Result.RunID, len(report.Result.NodeIDs), report.Result.Relationships)
			switch {
			case !report.Checked:
				fmt.Println("verification skipped")
			case report.Verified:
				fmt.Println("verification passed")
			default:
				fmt.Println("verification FAILED: store counts do not match the map")
				os.Exit(1)
			}
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Extract and report without writing to the store")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip post-export count verification")
	return cmd
}
