package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the recognized type tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "MIME\tROUTE\tPAYLOAD")
		for _, t := range domain.SupportedTypes {
			payload := "html"
			if t.IsJSON() {
				payload = "json"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", t, t.Route(), payload)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
