// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pagethumb/internal/history"
	"github.com/pdiddy/pagethumb/internal/pipeline"
	"github.com/pdiddy/pagethumb/internal/thumbnail"
	"github.com/pdiddy/pagethumb/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process <file.pdf>",
	Short: "Run the full split, thumbnail, and reconcile pipeline",
	Long: `Process splits the source PDF into one file per page, rasterizes a JPEG
thumbnail for each page, and reconciles the rasterizer's output filenames.
A page whose thumbnail fails is logged and skipped; the run still succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	addPipelineFlags(processCmd)
	processCmd.Flags().String("history-db", "", "SQLite run ledger path (empty disables recording)")

	rootCmd.AddCommand(processCmd)
}

// addPipelineFlags registers the flags shared by the pipeline-stage commands.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("out-dir", ".", "output directory for page files and thumbnails")
	cmd.Flags().String("rasterizer", "", "path to the rasterizer binary (default: pdftoppm on PATH)")
	cmd.Flags().Int("dpi", 0, "thumbnail render resolution (0 uses the rasterizer default)")
}

// pipelineConfig builds the pipeline configuration from flags, falling back
// to viper-managed config file and environment values.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	outDir, _ := cmd.Flags().GetString("out-dir")
	rasterizer, _ := cmd.Flags().GetString("rasterizer")
	dpi, _ := cmd.Flags().GetInt("dpi")

	if rasterizer == "" {
		rasterizer = viper.GetString("rasterizer.binary_path")
	}
	if dpi == 0 {
		dpi = viper.GetInt("rasterizer.dpi")
	}

	cfg := types.PipelineConfig{
		OutDir: outDir,
		Rasterizer: types.RasterizerConfig{
			BinaryPath: rasterizer,
			DPI:        dpi,
		},
	}

	if cmd.Flags().Lookup("history-db") != nil {
		cfg.HistoryDB, _ = cmd.Flags().GetString("history-db")
		if cfg.HistoryDB == "" {
			cfg.HistoryDB = viper.GetString("history_db")
		}
	}

	return cfg
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	if err := pipeline.ValidateSource(args[0]); err != nil {
		return err
	}

	rast, err := thumbnail.NewPdftoppm(cfg.Rasterizer)
	if err != nil {
		return err
	}

	sum, err := pipeline.Run(cfg, args[0], rast, os.Stdout)
	if err != nil {
		return err
	}

	if cfg.HistoryDB != "" {
		if err := recordRun(cfg.HistoryDB, sum); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
		}
	}

	return nil
}

func recordRun(dbPath string, sum pipeline.Summary) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(history.Run{
		Source:          sum.Source,
		Pages:           sum.Pages,
		ThumbsGenerated: sum.Thumbs.Generated,
		ThumbsFailed:    sum.Thumbs.Failed,
		Renamed:         sum.Reconcile.Renamed,
		Skipped:         sum.Reconcile.Skipped,
		Errored:         sum.Reconcile.Errored,
		StartedAt:       sum.StartedAt,
	})
}
