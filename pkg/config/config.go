// Package config loads label descriptions from YAML.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/pureui/highlight/pkg/errors"
	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/highlight"
)

// FileName is the label description looked up by LoadOptional.
const FileName = "highlight.yaml"

// SupportedMajor is the description format major version this package reads.
const SupportedMajor = "v1"

// Config is a label description.
type Config struct {
	Version string  `yaml:"version"`
	Text    string  `yaml:"text"`
	Width   float64 `yaml:"width,omitempty"`
	// Color is the plain text color, "#RRGGBB" or "#AARRGGBB".
	Color string `yaml:"color,omitempty"`
	// LinkColor and ActiveColor are defaults for links that set none.
	LinkColor   string       `yaml:"link_color,omitempty"`
	ActiveColor string       `yaml:"active_color,omitempty"`
	Links       []LinkConfig `yaml:"links"`
}

// LinkConfig describes one link either by Text or by a rune range.
type LinkConfig struct {
	Name        string `yaml:"name"`
	Text        string `yaml:"text,omitempty"`
	Start       *int   `yaml:"start,omitempty"`
	End         *int   `yaml:"end,omitempty"`
	Color       string `yaml:"color,omitempty"`
	ActiveColor string `yaml:"active_color,omitempty"`
}

// Label is a validated description with parsed colors.
type Label struct {
	Text  string
	Width float64
	Color graphics.Color
	Links []Link
}

// Link is a validated link. Exactly one of Text and Range is meaningful:
// ByRange reports which.
type Link struct {
	Name    string
	Text    string
	Range   highlight.TextRange
	ByRange bool
	Style   highlight.Link
}

// Load reads and validates the description at path.
func Load(path string) (*Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// LoadOptional reads highlight.yaml from dir if present. A missing file
// yields nil without error.
func LoadOptional(dir string) (*Label, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}
	return Parse(data)
}

// Parse decodes and validates a YAML description.
func Parse(data []byte) (*Label, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("config.Parse", fmt.Errorf("failed to parse label description: %w", err))
	}
	label, err := cfg.Resolve()
	if err != nil {
		return nil, configError("config.Parse", err)
	}
	return label, nil
}

// Resolve validates the description and parses its colors.
func (c *Config) Resolve() (*Label, error) {
	if err := validateVersion(c.Version); err != nil {
		return nil, err
	}
	if c.Text == "" {
		return nil, fmt.Errorf("text is required")
	}
	if c.Width < 0 {
		return nil, fmt.Errorf("width must not be negative (got %v)", c.Width)
	}

	color, err := parseColor("color", c.Color, graphics.ColorBlack)
	if err != nil {
		return nil, err
	}
	linkColor, err := parseColor("link_color", c.LinkColor, 0)
	if err != nil {
		return nil, err
	}
	activeColor, err := parseColor("active_color", c.ActiveColor, 0)
	if err != nil {
		return nil, err
	}

	label := &Label{Text: c.Text, Width: c.Width, Color: color}
	seen := make(map[string]bool)
	for i, lc := range c.Links {
		name := strings.TrimSpace(lc.Name)
		if name == "" {
			name = fmt.Sprintf("link%d", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("links[%d]: duplicate name %q", i, name)
		}
		seen[name] = true

		link := Link{Name: name, Text: lc.Text}
		hasRange := lc.Start != nil || lc.End != nil
		switch {
		case lc.Text != "" && hasRange:
			return nil, fmt.Errorf("links[%d] %q: set either text or start/end, not both", i, name)
		case hasRange:
			if lc.Start == nil || lc.End == nil {
				return nil, fmt.Errorf("links[%d] %q: start and end must both be set", i, name)
			}
			link.ByRange = true
			link.Range = highlight.TextRange{Start: *lc.Start, End: *lc.End}
		case lc.Text == "":
			return nil, fmt.Errorf("links[%d] %q: text or start/end is required", i, name)
		}

		if link.Style.NormalColor, err = parseColor(fmt.Sprintf("links[%d].color", i), lc.Color, linkColor); err != nil {
			return nil, err
		}
		if link.Style.ActiveColor, err = parseColor(fmt.Sprintf("links[%d].active_color", i), lc.ActiveColor, activeColor); err != nil {
			return nil, err
		}
		label.Links = append(label.Links, link)
	}
	return label, nil
}

func validateVersion(v string) error {
	if v == "" {
		return fmt.Errorf("version is required (e.g. %s.0.0)", SupportedMajor)
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("version %q is not supported (want %s.x.y)", v, SupportedMajor)
	}
	return nil
}

func parseColor(field, value string, fallback graphics.Color) (graphics.Color, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	c, err := graphics.ParseHex(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

func configError(op string, err error) *errors.HighlightError {
	return &errors.HighlightError{Op: op, Kind: errors.KindConfig, Err: err}
}
