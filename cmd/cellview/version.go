package main

import (
	"fmt"

	"github.com/aretw0/cellview"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cellview",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cellview version %s\n", cellview.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
