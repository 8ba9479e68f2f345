// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pagethumb/internal/pdftest"
	"github.com/pdiddy/pagethumb/pkg/types"
)

// suffixingRasterizer imitates pdftoppm: it writes a JPEG placeholder whose
// name carries a page-number suffix the caller never asked for.
type suffixingRasterizer struct {
	failPage int
}

func (s *suffixingRasterizer) Rasterize(docPath string, page int, outPrefix string) error {
	if page == s.failPage {
		return errors.New("exit status 1")
	}
	name := fmt.Sprintf("%s-%d.jpeg", outPrefix, page)
	return os.WriteFile(name, []byte("jpeg"), 0o644)
}

func TestValidateSource(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "doc.pdf")
	pdftest.WriteFile(t, existing, 1)
	upper := filepath.Join(dir, "DOC.PDF")
	pdftest.WriteFile(t, upper, 1)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid pdf", existing, ""},
		{"uppercase extension accepted", upper, ""},
		{"wrong extension", filepath.Join(dir, "doc.docx"), "unsupported input"},
		{"missing file", filepath.Join(dir, "absent.pdf"), "input file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSource(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSource_ExtensionCheckedBeforeOpen(t *testing.T) {
	// A .docx path must fail on the extension even though the file does not
	// exist either.
	err := ValidateSource(filepath.Join(t.TempDir(), "absent.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input")
}

func TestRun_EndToEnd(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	src := filepath.Join(srcDir, "input.pdf")
	pdftest.WriteFile(t, src, 3)

	cfg := types.PipelineConfig{OutDir: outDir}
	var log bytes.Buffer

	sum, err := Run(cfg, src, &suffixingRasterizer{}, &log)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Pages)
	assert.Equal(t, 3, sum.Thumbs.Generated)
	assert.Equal(t, 0, sum.Thumbs.Failed)
	assert.Equal(t, 3, sum.Reconcile.Renamed)
	assert.Equal(t, 0, sum.Reconcile.Errored)

	// Despite the rasterizer's suffixing, every page ends with a stable
	// pdf/jpeg pair.
	for n := 1; n <= 3; n++ {
		for _, name := range []string{
			fmt.Sprintf("page_%d_input.pdf", n),
			fmt.Sprintf("page_%d_input.jpeg", n),
		} {
			_, err := os.Stat(filepath.Join(outDir, name))
			assert.NoError(t, err, "expected %s to exist", name)
		}
	}
}

func TestRun_ThumbnailFailureDoesNotAbort(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	src := filepath.Join(srcDir, "input.pdf")
	pdftest.WriteFile(t, src, 3)

	cfg := types.PipelineConfig{OutDir: outDir}
	var log bytes.Buffer

	sum, err := Run(cfg, src, &suffixingRasterizer{failPage: 2}, &log)
	require.NoError(t, err, "a per-page thumbnail failure is not fatal")

	assert.Equal(t, 2, sum.Thumbs.Generated)
	assert.Equal(t, 1, sum.Thumbs.Failed)
	assert.Equal(t, 2, sum.Reconcile.Renamed)

	// The failed page still has its split PDF, just no thumbnail.
	_, err = os.Stat(filepath.Join(outDir, "page_2_input.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "page_2_input.jpeg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_LoadFailureIsFatal(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	src := filepath.Join(srcDir, "broken.pdf")
	require.NoError(t, os.WriteFile(src, []byte("not a pdf"), 0o644))

	cfg := types.PipelineConfig{OutDir: outDir}
	var log bytes.Buffer

	_, err := Run(cfg, src, &suffixingRasterizer{}, &log)
	require.Error(t, err)

	// Nothing may have been written.
	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
