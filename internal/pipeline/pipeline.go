// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the three stages of a run: split every page to
// its own PDF, rasterize a thumbnail per page, then reconcile the
// rasterizer's output names. Each stage runs to completion over all pages
// before the next starts.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/pagethumb/internal/reconcile"
	"github.com/pdiddy/pagethumb/internal/splitter"
	"github.com/pdiddy/pagethumb/internal/thumbnail"
	"github.com/pdiddy/pagethumb/pkg/types"
)

// recognizedExt is the only input extension the pipeline accepts.
const recognizedExt = ".pdf"

// ValidateSource rejects bad inputs before any processing starts. The
// extension check runs first, so an unsupported file type fails without the
// file ever being opened.
func ValidateSource(path string) error {
	if !strings.EqualFold(filepath.Ext(path), recognizedExt) {
		return fmt.Errorf("unsupported input %s: expected a %s file", path, recognizedExt)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file %s: %w", path, err)
	}
	return nil
}

// Summary aggregates the outcome of one full run.
type Summary struct {
	Source    string
	Pages     int
	Thumbs    thumbnail.BatchResult
	Reconcile reconcile.Result
	StartedAt time.Time
}

// Run executes the three stages in order against srcPath, writing all
// artifacts to cfg.OutDir. Load and split failures abort the run; per-page
// thumbnail failures and per-file reconcile errors are carried in the
// summary without aborting.
func Run(cfg types.PipelineConfig, srcPath string, rast thumbnail.Rasterizer, w io.Writer) (Summary, error) {
	sum := Summary{StartedAt: time.Now().UTC()}

	doc, err := splitter.Load(srcPath)
	if err != nil {
		return sum, err
	}
	sum.Source = doc.Path
	sum.Pages = doc.PageCount()

	fmt.Fprintf(w, "processing %s (%d pages)\n", doc.Path, doc.PageCount())

	if _, err := splitter.Split(doc, cfg.OutDir, w); err != nil {
		return sum, err
	}

	sum.Thumbs = thumbnail.GenerateBatch(rast, doc.Path, doc.PageCount(), cfg.OutDir, doc.BaseName, w)

	res, err := reconcile.Reconcile(cfg.OutDir, w)
	if err != nil {
		return sum, err
	}
	sum.Reconcile = res

	return sum, nil
}
