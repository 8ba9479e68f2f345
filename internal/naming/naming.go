// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naming derives the on-disk names shared by the splitter, thumbnail
// generator, and reconciler. All three stages agree on one base name per run,
// taken from the source file's name without its extension.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BaseName returns the file name at path without directory or extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// PagePDF returns the file name for the extracted single-page PDF of page n.
// Pages are numbered from 1.
func PagePDF(n int, base string) string {
	return fmt.Sprintf("page_%d_%s.pdf", n, base)
}

// ThumbPrefix returns the rasterizer output prefix for page n. The rasterizer
// appends the extension itself, so the prefix carries none.
func ThumbPrefix(n int, base string) string {
	return fmt.Sprintf("page_%d_%s", n, base)
}
