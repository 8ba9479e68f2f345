// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pagethumb/internal/inspect"
	"github.com/pdiddy/pagethumb/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Print a YAML summary of a source PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pipeline.ValidateSource(args[0]); err != nil {
			return err
		}

		info, err := inspect.Describe(args[0])
		if err != nil {
			return err
		}
		return inspect.Write(info, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
