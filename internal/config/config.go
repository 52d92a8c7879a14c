package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/maskedit/internal/mask/registry"
)

// Field defines one form field and the mask applied to it.
type Field struct {
	// Name is the unique field identifier.
	Name string `toml:"name" yaml:"name"`

	// Label is the text rendered next to the field. Defaults to Name.
	Label string `toml:"label" yaml:"label"`

	// Mask is the placeholder template ("??/??"). Empty when Grouping
	// is set.
	Mask string `toml:"mask" yaml:"mask"`

	// Grouping selects the fixed-group variant instead of a template.
	Grouping bool `toml:"grouping" yaml:"grouping"`
}

// Definition converts the field into a registry definition.
func (f Field) Definition() registry.Definition {
	return registry.Definition{
		Name:     f.Name,
		Template: f.Mask,
		Grouping: f.Grouping,
	}
}

// Config holds the full mask definitions file.
type Config struct {
	Fields []Field `toml:"field" yaml:"fields"`
}

// Default returns the built-in field set used when no config file is
// present.
func Default() *Config {
	return &Config{
		Fields: []Field{
			{Name: "expiry", Label: "Expiry", Mask: "??/??"},
			{Name: "phone", Label: "Phone", Mask: "(???) ???-????"},
			{Name: "card", Label: "Card number", Grouping: true},
		},
	}
}

// Load reads a mask definitions file. Returns nil, nil if the file
// doesn't exist (not an error).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses config data, choosing the format by the path's
// extension (.toml, .yaml, .yml).
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Validate checks every field definition: names must be unique and
// non-empty, and each field sets exactly one of mask or grouping.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: missing name", ErrInvalidField)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true

		if f.Grouping == (f.Mask != "") {
			return fmt.Errorf("%w: %s must set exactly one of mask or grouping", ErrInvalidField, f.Name)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	for i := range c.Fields {
		if c.Fields[i].Label == "" {
			c.Fields[i].Label = c.Fields[i].Name
		}
	}
}
