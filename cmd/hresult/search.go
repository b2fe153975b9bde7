package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cloudsoda/go-hresult/erref"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search HRESULT names and descriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return &erref.InvalidArgumentError{Message: "search text is empty"}
			}

			results := erref.SearchHResults(args[0])
			if len(results) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no HRESULT matches %q\n", args[0])
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range results {
				fmt.Fprintf(tw, "%s\t0x%08X\t%s\n", c.Name, c.Value, c.Description)
			}
			return tw.Flush()
		},
	}
}
