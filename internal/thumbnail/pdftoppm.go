// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package thumbnail

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pdiddy/pagethumb/pkg/types"
)

const binPdftoppm = "pdftoppm"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunCombined(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunCombined(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

var defaultExec executor = &osExecutor{}

// Pdftoppm rasterizes pages by invoking the poppler pdftoppm binary once per
// page. Each call blocks until the subprocess exits; no timeout is applied.
type Pdftoppm struct {
	bin  string
	dpi  int
	exec executor
}

// NewPdftoppm resolves the rasterizer binary up front, so a missing
// executable fails the run before any page is processed. An explicit
// BinaryPath wins; otherwise pdftoppm is looked up on PATH.
func NewPdftoppm(cfg types.RasterizerConfig) (*Pdftoppm, error) {
	return newPdftoppm(cfg, defaultExec)
}

func newPdftoppm(cfg types.RasterizerConfig, exec executor) (*Pdftoppm, error) {
	name := cfg.BinaryPath
	if name == "" {
		name = binPdftoppm
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("rasterizer %s not found: %w", name, err)
	}

	return &Pdftoppm{bin: bin, dpi: cfg.DPI, exec: exec}, nil
}

// Name returns the resolved rasterizer binary path.
func (p *Pdftoppm) Name() string {
	return p.bin
}

// Rasterize renders page n of docPath as a JPEG whose name starts with
// outPrefix. The page range is restricted to first = last = n. On failure the
// subprocess's combined output is folded into the returned error.
func (p *Pdftoppm) Rasterize(docPath string, page int, outPrefix string) error {
	n := strconv.Itoa(page)
	args := []string{"-f", n, "-l", n, "-jpeg"}
	if p.dpi > 0 {
		args = append(args, "-r", strconv.Itoa(p.dpi))
	}
	args = append(args, docPath, outPrefix)

	out, err := p.exec.RunCombined(p.bin, args...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("rasterizing page %d of %s: %w (%s)", page, docPath, err, msg)
		}
		return fmt.Errorf("rasterizing page %d of %s: %w", page, docPath, err)
	}
	return nil
}
