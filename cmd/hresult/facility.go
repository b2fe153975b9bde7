package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cloudsoda/go-hresult/erref"
	"github.com/cloudsoda/go-hresult/erref/facility"
)

func newFacilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facility [code|name]",
		Short: "Look up a facility by code or name, or list all facilities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return listFacilities(out)
			}

			v, err := erref.ParseValue(args[0])
			if err != nil {
				f, ok := facility.FindByName(args[0])
				if !ok {
					return err
				}
				printFacility(out, f)
				return nil
			}
			if v > 0xFFFF {
				return &erref.InvalidArgumentError{Message: fmt.Sprintf("facility code %d does not fit in 16 bits", v)}
			}

			f, err := facility.FindByCode(uint16(v))
			if err != nil {
				return err
			}
			printFacility(out, f)
			return nil
		},
	}
}

func printFacility(w io.Writer, f facility.Facility) {
	fmt.Fprintf(w, "%s (%d): %s\n", f.Name, f.Code, f.Description)
}

func listFacilities(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range facility.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", f.Code, f.Name, f.Description)
	}
	return tw.Flush()
}
