package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// SSMLKIT__VALIDATION__MODE=extended
const EnvPrefix = "SSMLKIT"

// FlagMappings maps CLI flag names to configuration keys
var FlagMappings = map[string]string{
	"mode":          "validation.mode",
	"custom-tags":   "extract.custom_tags",
	"indent":        "format.indent",
	"title":         "preview.title",
	"inline-styles": "preview.inline_styles",
	"theme":         "preview.theme",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
}

// Loader handles configuration loading from multiple sources
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
}

// Validator can be implemented by config structs to enable validation
type Validator interface {
	Validate() error
}

// NewLoader creates a loader. Environment variables use a double underscore
// for nesting: PREFIX__FORMAT__INDENT -> format.indent
func NewLoader(envPrefix string) *Loader {
	return &Loader{
		k:         koanf.New("."),
		envPrefix: envPrefix + "__",
	}
}

// LoadWithDefaults loads, from lowest to highest priority, the struct
// defaults, the YAML file at configPath and the environment. A configPath
// that does not exist is an error; an empty one is skipped.
func (l *Loader) LoadWithDefaults(defaults any, configPath string) error {
	if defaults != nil {
		if err := l.k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
			return fmt.Errorf("failed to load defaults: %w", err)
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("config file not found: %s", configPath)
		}
		if err := l.k.Load(file.Provider(configPath), koanfyaml.Parser()); err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
	}

	envProvider := env.Provider(l.envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	})
	if err := l.k.Load(envProvider, nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	return nil
}

// LoadFlags applies flags the user set explicitly, using mappings from flag
// name to key. Call it after LoadWithDefaults.
func (l *Loader) LoadFlags(flags *pflag.FlagSet, mappings map[string]string) error {
	var errs []error
	flags.Visit(func(f *pflag.Flag) {
		key, ok := mappings[f.Name]
		if !ok {
			return
		}
		var value any = f.Value.String()
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			value = sv.GetSlice()
		}
		if err := l.k.Set(key, value); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Unmarshal decodes the configuration at path into out
func (l *Loader) Unmarshal(path string, out any) error {
	return l.k.Unmarshal(path, out)
}

// UnmarshalAndValidate decodes into out and calls Validate when out
// implements Validator
func (l *Loader) UnmarshalAndValidate(path string, out any) error {
	if err := l.k.Unmarshal(path, out); err != nil {
		return err
	}
	if v, ok := out.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// Set sets a single key
func (l *Loader) Set(key string, value any) error {
	return l.k.Set(key, value)
}

// Raw returns the loaded configuration as a nested map
func (l *Loader) Raw() map[string]any {
	return l.k.Raw()
}

// DumpYAML writes the loaded configuration as YAML
func (l *Loader) DumpYAML(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(l.k.Raw())
}

// Load builds a validated Config from the defaults, an optional YAML file,
// the environment and the explicitly set flags. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	l := NewLoader(EnvPrefix)
	if err := l.LoadWithDefaults(Default(), configPath); err != nil {
		return Config{}, err
	}
	if flags != nil {
		if err := l.LoadFlags(flags, FlagMappings); err != nil {
			return Config{}, fmt.Errorf("failed to apply flags: %w", err)
		}
	}

	var cfg Config
	if err := l.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config:\n%w", err)
	}
	return cfg, nil
}
