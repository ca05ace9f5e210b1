package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config file
// is given explicitly.
const DefaultFileName = ".tellint.yaml"

// Config holds the options that affect a lint run
type Config struct {
	// ColonBudget is the maximum number of colon violations allowed
	ColonBudget int `yaml:"colon_budget" json:"colonBudget"`

	// ColonExceptionsQuoteOnly exempts colons that introduce quoted speech
	// from the budget, and fails any other colon usage.
	ColonExceptionsQuoteOnly bool `yaml:"colon_exceptions_quote_only" json:"colonExceptionsQuoteOnly"`

	// SkipTitleLine excludes line 1 from colon counting
	SkipTitleLine bool `yaml:"skip_title_line" json:"skipTitleLine"`
}

// Defaults returns the default configuration
func Defaults() Config {
	return Config{
		ColonBudget:              2,
		ColonExceptionsQuoteOnly: true,
		SkipTitleLine:            false,
	}
}

// Validate checks the configuration for invalid values
func (c Config) Validate() error {
	if c.ColonBudget < 0 {
		return fmt.Errorf("colon_budget must not be negative, got %d", c.ColonBudget)
	}
	return nil
}

// Overlay is a partial configuration. Nil fields leave the base value unchanged.
type Overlay struct {
	Preset                   string `yaml:"preset,omitempty"`
	ColonBudget              *int   `yaml:"colon_budget,omitempty"`
	ColonExceptionsQuoteOnly *bool  `yaml:"colon_exceptions_quote_only,omitempty"`
	SkipTitleLine            *bool  `yaml:"skip_title_line,omitempty"`
}

// Apply returns c with every set field of o applied
func (c Config) Apply(o Overlay) Config {
	if o.ColonBudget != nil {
		c.ColonBudget = *o.ColonBudget
	}
	if o.ColonExceptionsQuoteOnly != nil {
		c.ColonExceptionsQuoteOnly = *o.ColonExceptionsQuoteOnly
	}
	if o.SkipTitleLine != nil {
		c.SkipTitleLine = *o.SkipTitleLine
	}
	return c
}

// ParseOverlay decodes YAML into an Overlay, rejecting unknown keys
func ParseOverlay(data []byte) (Overlay, error) {
	var o Overlay
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		// An empty document decodes to io.EOF and means "no overrides"
		if errors.Is(err, io.EOF) {
			return Overlay{}, nil
		}
		return Overlay{}, err
	}
	return o, nil
}

// LoadFile reads an Overlay from a YAML file
func LoadFile(path string) (Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overlay{}, fmt.Errorf("failed to read config file: %w", err)
	}
	o, err := ParseOverlay(data)
	if err != nil {
		return Overlay{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return o, nil
}

// Options describes where configuration comes from. Later sources win:
// defaults, then the preset, then the config file, then Flags.
type Options struct {
	Preset string
	// File is an explicit config file path. When empty, DefaultFileName in
	// Dir is used if it exists.
	File  string
	Dir   string
	Flags Overlay
}

// Resolve builds the effective configuration from opts
func Resolve(opts Options) (Config, error) {
	var file Overlay
	var err error

	switch {
	case opts.File != "":
		file, err = LoadFile(opts.File)
		if err != nil {
			return Config{}, err
		}
	default:
		candidate := filepath.Join(opts.Dir, DefaultFileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			file, err = LoadFile(candidate)
			if err != nil {
				return Config{}, err
			}
		}
	}

	presetName := opts.Preset
	if presetName == "" {
		presetName = file.Preset
	}
	if presetName == "" {
		presetName = DefaultPreset
	}

	cfg, err := Preset(presetName)
	if err != nil {
		return Config{}, err
	}

	cfg = cfg.Apply(file).Apply(opts.Flags)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
