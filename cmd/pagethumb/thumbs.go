// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pagethumb/internal/pipeline"
	"github.com/pdiddy/pagethumb/internal/reconcile"
	"github.com/pdiddy/pagethumb/internal/splitter"
	"github.com/pdiddy/pagethumb/internal/thumbnail"
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs <file.pdf>",
	Short: "Generate per-page JPEG thumbnails for a PDF",
	Long: `Thumbs rasterizes one JPEG per page of the source PDF through the external
rasterizer, then reconciles the output filenames. Pages that fail to
rasterize are logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runThumbs,
}

func init() {
	addPipelineFlags(thumbsCmd)

	rootCmd.AddCommand(thumbsCmd)
}

func runThumbs(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	if err := pipeline.ValidateSource(args[0]); err != nil {
		return err
	}

	rast, err := thumbnail.NewPdftoppm(cfg.Rasterizer)
	if err != nil {
		return err
	}

	doc, err := splitter.Load(args[0])
	if err != nil {
		return err
	}

	thumbnail.GenerateBatch(rast, doc.Path, doc.PageCount(), cfg.OutDir, doc.BaseName, os.Stdout)

	_, err = reconcile.Reconcile(cfg.OutDir, os.Stdout)
	return err
}
