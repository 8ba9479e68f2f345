// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package thumbnail renders one JPEG thumbnail per page through an external
// rasterizer. The rasterizer owns the final filename: when asked for a
// single-page range it may still append a numeric suffix to the requested
// prefix, which the reconcile package strips in a later pass. Nothing here
// verifies the output files.
package thumbnail

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/pagethumb/internal/naming"
)

// Rasterizer renders a single page of a PDF to an image file on disk.
// Implementations only control the output name prefix; the extension and any
// disambiguation suffix are chosen by the tool.
type Rasterizer interface {
	Rasterize(docPath string, page int, outPrefix string) error
}

// PageStatus records the outcome of one page's rasterization.
type PageStatus struct {
	Page int
	Err  error
}

// BatchResult holds the outcome of a thumbnail generation run.
type BatchResult struct {
	Generated int
	Failed    int
	Pages     []PageStatus
}

// Total returns the number of pages processed.
func (r BatchResult) Total() int {
	return r.Generated + r.Failed
}

// HasFailures reports whether any page failed to rasterize.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// GenerateBatch rasterizes pages 1 through pageCount of docPath into outDir,
// requesting the prefix page_{n}_{baseName} for each page. A failing page is
// logged and skipped; it never aborts the batch. No retry is attempted.
func GenerateBatch(r Rasterizer, docPath string, pageCount int, outDir, baseName string, w io.Writer) BatchResult {
	var result BatchResult

	for n := 1; n <= pageCount; n++ {
		prefix := naming.ThumbPrefix(n, baseName)
		err := r.Rasterize(docPath, n, filepath.Join(outDir, prefix))
		result.Pages = append(result.Pages, PageStatus{Page: n, Err: err})

		if err != nil {
			fmt.Fprintf(w, "failed:    page %d (%v)\n", n, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "thumbnail: page %d -> %s\n", n, prefix)
		result.Generated++
	}

	fmt.Fprintf(w, "\nThumbnail summary: %d generated, %d failed (total: %d)\n",
		result.Generated, result.Failed, result.Total())
	return result
}
