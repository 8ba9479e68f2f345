// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration records shared by the pagethumb
// stages and the CLI surface.
package types

// RasterizerConfig holds settings for the external page rasterizer.
type RasterizerConfig struct {
	// BinaryPath is an explicit path to the rasterizer executable.
	// Empty means the default binary name is resolved on PATH.
	BinaryPath string `json:"binary_path" yaml:"binary_path"`

	// DPI is the render resolution passed to the rasterizer
	// (0 uses the tool's default).
	DPI int `json:"dpi" yaml:"dpi"`
}

// PipelineConfig holds settings for a full split-and-thumbnail run.
type PipelineConfig struct {
	// OutDir is the directory that receives page PDFs and thumbnails.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Rasterizer configures the external thumbnail rasterizer.
	Rasterizer RasterizerConfig `json:"rasterizer" yaml:"rasterizer"`

	// HistoryDB is the path to the SQLite run ledger.
	// Empty disables run recording.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`
}
