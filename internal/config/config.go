// Package config holds the settings shared by the ssmlkit CLI and the
// Processor, and loads them from defaults, YAML, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Jabelic-Works/ssml-utilities/internal/extract"
	"github.com/Jabelic-Works/ssml-utilities/internal/highlight"
	"github.com/Jabelic-Works/ssml-utilities/internal/logging"
	"github.com/Jabelic-Works/ssml-utilities/internal/validator"
)

// Config holds every tunable of the toolkit
type Config struct {
	Validation ValidationConfig  `koanf:"validation" yaml:"validation"`
	Highlight  highlight.Classes `koanf:"highlight" yaml:"highlight"`
	Extract    extract.Options   `koanf:"extract" yaml:"extract"`
	Format     FormatConfig      `koanf:"format" yaml:"format"`
	Preview    PreviewConfig     `koanf:"preview" yaml:"preview"`
	Logging    logging.Config    `koanf:"logging" yaml:"logging"`
}

// ValidationConfig selects how unknown tag names are judged
type ValidationConfig struct {
	// Mode is one of strict, extended or ascii-custom
	Mode string `koanf:"mode" yaml:"mode"`
}

// FormatConfig controls the pretty printer
type FormatConfig struct {
	Indent int `koanf:"indent" yaml:"indent"`
}

// PreviewConfig controls the standalone HTML preview page
type PreviewConfig struct {
	Title string `koanf:"title" yaml:"title"`

	// InlineStyles copies the theme into style attributes and drops the
	// <style> element
	InlineStyles bool `koanf:"inline_styles" yaml:"inline_styles"`

	// Theme is a path to a stylesheet replacing the built-in theme
	Theme string `koanf:"theme" yaml:"theme"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Validation: ValidationConfig{Mode: validator.Strict.String()},
		Highlight:  highlight.DefaultOptions().Classes,
		Extract:    extract.DefaultOptions(),
		Format:     FormatConfig{Indent: 2},
		Preview:    PreviewConfig{Title: "SSML preview"},
		Logging:    logging.DefaultConfig(),
	}
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	var errs []error

	if _, err := validator.ParseMode(c.Validation.Mode); err != nil {
		errs = append(errs, fmt.Errorf("validation.mode: %w", err))
	}

	classes := map[string]string{
		"highlight.tag":             c.Highlight.Tag,
		"highlight.attribute":       c.Highlight.Attribute,
		"highlight.attribute_value": c.Highlight.AttributeValue,
		"highlight.text":            c.Highlight.Text,
		"highlight.error":           c.Highlight.Error,
	}
	for _, field := range []string{"highlight.tag", "highlight.attribute", "highlight.attribute_value", "highlight.text", "highlight.error"} {
		class := classes[field]
		if strings.TrimSpace(class) == "" {
			errs = append(errs, fmt.Errorf("%s: class name is required", field))
		} else if strings.ContainsAny(class, "\"<>& \t\n") {
			errs = append(errs, fmt.Errorf("%s: invalid class name %q", field, class))
		}
	}

	for i, tag := range c.Extract.CustomTags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, fmt.Errorf("extract.custom_tags[%d]: tag name is required", i))
		}
	}

	if c.Format.Indent < 0 || c.Format.Indent > 16 {
		errs = append(errs, fmt.Errorf("format.indent: must be between 0 and 16, got %d", c.Format.Indent))
	}

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: must be text or json, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// ValidatorOptions returns the validation settings. An unparsable mode falls
// back to strict; Validate reports it.
func (c *Config) ValidatorOptions() validator.Options {
	mode, err := validator.ParseMode(c.Validation.Mode)
	if err != nil {
		return validator.DefaultOptions()
	}
	return validator.Options{Mode: mode}
}

// HighlightOptions returns the highlighter settings
func (c *Config) HighlightOptions() highlight.Options {
	return highlight.Options{Classes: c.Highlight}
}

// ExtractOptions returns the extractor settings with the validation mode
// applied
func (c *Config) ExtractOptions() extract.Options {
	opts := c.Extract
	opts.CustomTags = append([]string{}, c.Extract.CustomTags...)
	opts.Validation = c.ValidatorOptions()
	return opts
}
