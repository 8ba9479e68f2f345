// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pagethumb/internal/pipeline"
	"github.com/pdiddy/pagethumb/internal/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split <file.pdf>",
	Short: "Split a PDF into single-page PDF files",
	Long: `Split extracts every page of the source PDF into its own single-page file,
named page_{n}_{name}.pdf with pages counted from 1. Existing files of the
same name are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("out-dir", ".", "output directory for page files")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")

	if err := pipeline.ValidateSource(args[0]); err != nil {
		return err
	}

	doc, err := splitter.Load(args[0])
	if err != nil {
		return err
	}

	files, err := splitter.Split(doc, outDir, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\nSplit %d page(s) from %s\n", len(files), doc.Path)
	return nil
}
