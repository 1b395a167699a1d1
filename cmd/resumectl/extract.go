package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-parser/internal/extract"
	"resume-parser/internal/shared/config"
)

func newExtractCmd() *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Print the text extracted from a local PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if strategy == "" {
				strategy = cfg.ExtractionStrategy
			}
			x, err := extract.New(strategy, cfg.ScratchDir)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open resume: %w", err)
			}
			defer f.Close()

			res, err := x.Extract(cmd.Context(), extract.Document{FileName: filepath.Base(args[0]), Body: f})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Text)
			return err
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "Extraction strategy: plain or markdown (overrides EXTRACTION_STRATEGY)")
	return cmd
}
