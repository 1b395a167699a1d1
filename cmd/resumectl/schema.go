package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"resume-parser/internal/resume"
)

func newSchemaCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema sent with every completion request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if raw {
				return writeOutput(cmd, "", resume.SchemaJSON())
			}
			out, err := json.MarshalIndent(resume.Schema(), "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", out)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the embedded schema document, including $schema and $id")
	return cmd
}
