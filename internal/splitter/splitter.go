// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitter loads a multi-page source PDF and writes one single-page
// PDF per page. Page objects are copied with their resources intact; nothing
// is re-rendered.
package splitter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pagethumb/internal/naming"
)

// Document is the loaded multi-page source. It is read-only after Load and
// discarded once splitting completes.
type Document struct {
	// Path is the absolute path of the source file.
	Path string

	// BaseName is the source file name without extension, shared by every
	// artifact of the run.
	BaseName string

	ctx *model.Context
}

// Load reads and validates the PDF at path. A file that cannot be read or
// parsed fails the whole run: no later stage can proceed without a valid
// page count.
func Load(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", abs, err)
	}

	return &Document{
		Path:     abs,
		BaseName: naming.BaseName(abs),
		ctx:      ctx,
	}, nil
}

// PageCount returns the number of pages in the source document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Split writes one single-page PDF per source page into outDir, named
// page_{n}_{base}.pdf with n counted from 1. Existing files of the same name
// are overwritten. Any extraction or write failure aborts the split:
// downstream thumbnailing assumes a complete page set.
func Split(doc *Document, outDir string, w io.Writer) ([]string, error) {
	total := doc.PageCount()
	files := make([]string, 0, total)

	for n := 1; n <= total; n++ {
		r, err := api.ExtractPage(doc.ctx, n)
		if err != nil {
			return files, fmt.Errorf("extracting page %d of %s: %w", n, doc.Path, err)
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return files, fmt.Errorf("serializing page %d of %s: %w", n, doc.Path, err)
		}

		name := naming.PagePDF(n, doc.BaseName)
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return files, fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Fprintf(w, "split: %s (page %d/%d)\n", name, n, total)
		files = append(files, path)
	}

	return files, nil
}
