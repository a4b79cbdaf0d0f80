package main

import (
	"github.com/spf13/cobra"

	"hif/internal/hif"
)

var (
	dumpShowProps    bool
	dumpShowCodeInfo bool
)

func init() {
	dumpCmd.Flags().BoolVar(&dumpShowProps, "props", false, "include property names")
	dumpCmd.Flags().BoolVar(&dumpShowCodeInfo, "code-info", false, "include source positions")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in sample design tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := buildSampleDesign()
		return hif.DumpWithOptions(cmd.OutOrStdout(), sys, hif.DumpOptions{
			ShowProperties: dumpShowProps,
			ShowCodeInfo:   dumpShowCodeInfo,
		})
	},
}
