// Command vuegraph extracts the concept graph from VUE map files and
// imports it into Neo4j.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

var (
	flagURI      string
	flagUsername string
	flagPassword string
	flagDatabase string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("vuegraph version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("vuegraph version %s-dev", version)
}

func main() {
	// Local .env, if present. Tables go to stdout, logs to stderr.
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:     "vuegraph",
		Short:   "Import VUE concept maps into Neo4j",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURI, "uri", defaultURI, "Neo4j URI (env: VUEGRAPH_NEO4J_URI)")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", defaultUsername, "Neo4j username (env: VUEGRAPH_NEO4J_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "Neo4j password (env: VUEGRAPH_NEO4J_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "Neo4j database (env: VUEGRAPH_NEO4J_DATABASE)")

	rootCmd.AddCommand(newNodesCmd())
	rootCmd.AddCommand(newLinksCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
