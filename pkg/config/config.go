package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"

	"github.com/dmgcanvas/dmgcanvas/pkg/env"
)

// Config represents the complete dmgcanvas configuration
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Text    TextConfig    `yaml:"text"`
	Palette PaletteConfig `yaml:"palette"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Render  RenderConfig  `yaml:"render,omitempty"`
}

// CanvasConfig holds the target pixel dimensions of the background.
// DMG backgrounds are placed at 1x — Finder does not auto-scale @2x images,
// so these are the exact dimensions the window layout must match.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TextConfig contains the strings drawn onto the background
type TextConfig struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle,omitempty"`
	Arrow       string `yaml:"arrow,omitempty"`
	Instruction string `yaml:"instruction,omitempty"`
}

// PaletteConfig contains the hex colors used by the template
type PaletteConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	Border     string `yaml:"border"`
}

// OutputConfig names the generated files. SVG and PNG are file names,
// not paths; both land in Dir and are overwritten on every run.
type OutputConfig struct {
	Dir string `yaml:"dir,omitempty"`
	SVG string `yaml:"svg,omitempty"`
	PNG string `yaml:"png,omitempty"`
}

// RenderConfig controls backend selection
type RenderConfig struct {
	// Backends is the fallback chain, tried in order. Valid names:
	// rsvg, inkscape, quicklook, imagemagick, builtin.
	Backends []string `yaml:"backends,omitempty"`
}

// Default values applied when the config omits the optional sections.
const (
	DefaultSVGName = "dmg-background.svg"
	DefaultPNGName = "dmg-background.png"
)

// DefaultBackends is the default fallback chain. The builtin rasterizer is
// deliberately absent: it is always available and would mask a missing-tool
// failure the caller likely wants to hear about.
func DefaultBackends() []string {
	return []string{"rsvg", "inkscape", "quicklook", "imagemagick"}
}

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	cleanPath, err := validateConfigPath(path)
	if err != nil {
		return nil, err
	}

	data, err := readConfigFile(cleanPath)
	if err != nil {
		return nil, err
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, fmt.Errorf("failed to parse config: empty document")
	}

	if err := env.SubstituteEnvVarsNode(file.Docs[0].Body); err != nil {
		return nil, fmt.Errorf("environment variable substitution failed: %w", err)
	}

	var config Config
	if err := yaml.NodeToValue(file.Docs[0].Body, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(path string, config *Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills in the optional output and render sections
func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.SVG == "" {
		c.Output.SVG = DefaultSVGName
	}
	if c.Output.PNG == "" {
		c.Output.PNG = DefaultPNGName
	}
	if len(c.Render.Backends) == 0 {
		c.Render.Backends = DefaultBackends()
	}
}

// SVGPath returns the full path of the generated SVG source
func (c *Config) SVGPath() string {
	return filepath.Join(c.Output.Dir, c.Output.SVG)
}

// PNGPath returns the full path of the final raster output
func (c *Config) PNGPath() string {
	return filepath.Join(c.Output.Dir, c.Output.PNG)
}

func validateConfigPath(path string) (string, error) {
	// Prevent path traversal attacks
	// Resolve to absolute path first, then validate it doesn't escape working directory
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	cleanPath := filepath.Clean(absPath)

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	wd = filepath.Clean(wd)

	// For paths within the working directory, ensure they don't use parent
	// directory references like "../../../etc/passwd"
	if strings.HasPrefix(cleanPath, wd+string(filepath.Separator)) || cleanPath == wd {
		relPath, err := filepath.Rel(wd, cleanPath)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		if !filepath.IsLocal(relPath) {
			return "", fmt.Errorf("invalid config path: path traversal detected")
		}
	}
	// Paths outside the working directory (e.g. absolute temp paths) are
	// allowed — tests and CI invoke with full paths.

	return cleanPath, nil
}

func readConfigFile(cleanPath string) ([]byte, error) {
	// Follow symlinks and validate the target is a regular file
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	// Prevent DoS via large files - limit to 1MB
	const maxConfigSize = 1024 * 1024 // 1MB
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: maximum size is 1MB")
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return data, nil
}
