package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudsoda/go-hresult/internal/report"
)

func newExportCmd() *cobra.Command {
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the HRESULT table as yaml, json, toml or Message Compiler source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" || outPath == "-" {
				return report.Export(cmd.OutOrStdout(), format)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := report.Export(f, format); err != nil {
				f.Close()
				os.Remove(outPath)
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "export format: "+strings.Join(report.Formats, ", "))
	cmd.Flags().StringVarP(&outPath, "out", "O", "-", "output file, - for stdout")
	return cmd
}
