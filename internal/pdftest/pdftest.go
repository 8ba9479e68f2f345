// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds minimal but valid PDF fixtures for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// WriteFile writes a minimal PDF with the given number of empty pages to
// path. The file carries a correct cross-reference table, so it passes full
// validation.
func WriteFile(t *testing.T, path string, pages int) {
	t.Helper()
	if err := os.WriteFile(path, Bytes(pages), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}

// Bytes returns the serialized form of a minimal PDF with the given number
// of empty US Letter pages.
func Bytes(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int

	buf.WriteString("%PDF-1.4\n")

	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	// Object 1: catalog, object 2: page tree, objects 3..: pages.
	addObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	addObj(fmt.Sprintf("<< /Type /Pages /Kids [ %s ] /Count %d >>",
		strings.Join(kids, " "), pages))

	for i := 0; i < pages; i++ {
		addObj("<< /Type /Page /Parent 2 0 R /MediaBox [ 0 0 612 792 ] /Resources << >> >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xref)

	return buf.Bytes()
}
