// Package backend wraps the external rasterization tools behind a uniform
// contract: a presence check and an SVG-to-PNG invocation. Backends are tried
// in the order the configuration lists them; the first one whose tool is
// installed wins.
package backend

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Backend is one rasterization strategy.
type Backend interface {
	// Name identifies the backend in configuration and logs.
	Name() string

	// Available reports whether the backend's tool is installed.
	Available() bool

	// Render rasterizes the SVG at svgPath into a PNG at pngPath, targeting
	// width×height pixels. Some tools cannot honor exact dimensions (qlmanage
	// fits a square); the caller reads back the output and conforms it.
	Render(ctx context.Context, svgPath, pngPath string, width, height int) error
}

// ErrNoBackend indicates that no backend in the configured chain has its
// tool installed.
var ErrNoBackend = errors.New("no rasterization backend available — install librsvg (brew install librsvg), Inkscape, or ImageMagick")

// registry lists all known backends in default priority order.
var registry = []Backend{
	RSVG{},
	Inkscape{},
	QuickLook{},
	ImageMagick{},
	Builtin{},
}

// Names returns the names of all known backends in priority order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, b := range registry {
		names = append(names, b.Name())
	}
	return names
}

// All returns every known backend in priority order.
func All() []Backend {
	return append([]Backend(nil), registry...)
}

// Chain resolves configured backend names into an ordered fallback chain.
func Chain(names []string) ([]Backend, error) {
	byName := make(map[string]Backend, len(registry))
	for _, b := range registry {
		byName[b.Name()] = b
	}

	chain := make([]Backend, 0, len(names))
	for _, name := range names {
		b, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown backend %q — valid backends: %s", name, strings.Join(Names(), ", "))
		}
		chain = append(chain, b)
	}
	return chain, nil
}

// Select returns the first available backend from the chain, or ErrNoBackend
// when every tool in the chain is missing.
func Select(chain []Backend) (Backend, error) {
	for _, b := range chain {
		if b.Available() {
			return b, nil
		}
	}
	return nil, ErrNoBackend
}

// runTool executes an external tool and wraps failures with its output.
func runTool(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s failed: %s: %w", name, msg, err)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
