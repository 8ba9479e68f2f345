// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reconcile normalizes rasterizer output filenames. The external
// rasterizer may append a numeric suffix to the requested prefix, so
// page_3_report becomes page_3_report-1.jpeg on disk. A single pass over the
// output directory renames such files back to prefix.ext, never overwriting
// an existing target.
package reconcile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// suffixed matches rasterizer output of the form page_<n>_<base>-<digits>.<ext>.
// Only the extension is matched case-insensitively.
var suffixed = regexp.MustCompile(`^(page_\d+_.+)-\d+(\.(?i:[a-z0-9]+))$`)

// Result holds the counters of one reconciliation pass. Skipped covers both
// conflict skips and files that did not match the suffix pattern:
// Total - Renamed - Errored.
type Result struct {
	Total   int
	Renamed int
	Skipped int
	Errored int
}

// Reconcile scans dir and renames every suffixed thumbnail to its bare
// prefix name. A candidate whose target already exists is skipped, never
// overwritten: the target could be a different page's legitimate thumbnail.
// Per-file errors are logged and counted without stopping the pass. Only the
// directory enumeration itself is fatal.
func Reconcile(dir string, w io.Writer) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var res Result
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		res.Total++

		name := entry.Name()
		m := suffixed.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		target := m[1] + m[2]
		oldPath := filepath.Join(dir, name)
		newPath := filepath.Join(dir, target)
		if oldPath == newPath {
			continue
		}

		if _, err := os.Stat(newPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (target %s exists)\n", name, target)
			continue
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(w, "error:   %s (probing target: %v)\n", name, err)
			res.Errored++
			continue
		}

		if err := os.Rename(oldPath, newPath); err != nil {
			fmt.Fprintf(w, "error:   %s (%v)\n", name, err)
			res.Errored++
			continue
		}

		fmt.Fprintf(w, "renamed: %s -> %s\n", name, target)
		res.Renamed++
	}

	res.Skipped = res.Total - res.Renamed - res.Errored

	fmt.Fprintf(w, "\nReconcile summary: %d renamed, %d skipped, %d errored (total files: %d)\n",
		res.Renamed, res.Skipped, res.Errored, res.Total)
	return res, nil
}
