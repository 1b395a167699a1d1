// Command resumectl runs the résumé parser as an HTTP server or against local files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/telemetry"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Résumé PDF to structured JSON",
		Long:          "resumectl extracts text from résumé PDFs and turns it into structured JSON with an OpenAI model, either over HTTP or for local files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newParseCmd(),
		newExtractCmd(),
		newSchemaCmd(),
	)
	return root
}

func main() {
	cfg := config.Load()
	telemetry.Configure(cfg.LogLevel, os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
