// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect summarizes a source document without modifying it.
package inspect

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pagethumb/internal/splitter"
)

// Info describes a source PDF.
type Info struct {
	Path      string `yaml:"path"`
	BaseName  string `yaml:"base_name"`
	Pages     int    `yaml:"pages"`
	SizeBytes int64  `yaml:"size_bytes"`
}

// Describe loads the document at path and returns its summary.
func Describe(path string) (Info, error) {
	doc, err := splitter.Load(path)
	if err != nil {
		return Info{}, err
	}

	fi, err := os.Stat(doc.Path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", doc.Path, err)
	}

	return Info{
		Path:      doc.Path,
		BaseName:  doc.BaseName,
		Pages:     doc.PageCount(),
		SizeBytes: fi.Size(),
	}, nil
}

// Write renders info as YAML to w.
func Write(info Info, w io.Writer) error {
	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding document info: %w", err)
	}
	_, err = w.Write(data)
	return err
}
