package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-parser/internal/bootstrap"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
)

func newParseCmd() *cobra.Command {
	var (
		strategy string
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "parse <file.pdf>",
		Short: "Run extraction and structured generation on a local PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if strategy != "" {
				cfg.ExtractionStrategy = strategy
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			app, err := bootstrap.Build(cfg)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open resume: %w", err)
			}
			defer f.Close()

			parsed, err := app.ResumeService.Parse(cmd.Context(), resumes.Upload{
				FileName: filepath.Base(args[0]),
				Body:     f,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(struct {
				Resume         any     `json:"resume"`
				ExtractionTime float64 `json:"extraction_time"`
				GenerationTime float64 `json:"generation_time"`
				TotalTimeTaken float64 `json:"total_time_taken"`
			}{
				Resume:         parsed.Resume,
				ExtractionTime: parsed.ExtractionTime.Seconds(),
				GenerationTime: parsed.GenerationTime.Seconds(),
				TotalTimeTaken: parsed.Total().Seconds(),
			}, "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(cmd, outPath, out)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "Extraction strategy: plain or markdown (overrides EXTRACTION_STRATEGY)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write JSON to this file instead of stdout")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
