package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudsoda/go-hresult/erref"
	"github.com/cloudsoda/go-hresult/internal/report"
)

func newDecodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode <value>...",
		Short: "Decode raw HRESULT values",
		Long: "Decode raw HRESULT values. Values are decimal, negative decimal " +
			"(read as a signed 32-bit integer) or hex with a 0x prefix.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(output)
			render, err := renderer(format)
			if err != nil {
				return err
			}

			reports := make([]report.Report, 0, len(args))
			for _, arg := range args {
				v, err := erref.ParseValue(arg)
				if err != nil {
					return err
				}
				reports = append(reports, report.Decode(v))
			}

			out := cmd.OutOrStdout()
			for i, r := range reports {
				if i > 0 && format == "text" {
					fmt.Fprintln(out)
				}
				b, err := render(r)
				if err != nil {
					return err
				}
				if _, err := out.Write(b); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func renderer(format string) (func(report.Report) ([]byte, error), error) {
	switch format {
	case "text":
		return func(r report.Report) ([]byte, error) { return []byte(r.Text()), nil }, nil
	case "json":
		return func(r report.Report) ([]byte, error) {
			b, err := r.JSON()
			return append(b, '\n'), err
		}, nil
	case "yaml":
		return func(r report.Report) ([]byte, error) {
			b, err := r.YAML()
			return append([]byte("---\n"), b...), err
		}, nil
	default:
		return nil, &erref.InvalidArgumentError{Message: fmt.Sprintf("unknown output format %q", format)}
	}
}
