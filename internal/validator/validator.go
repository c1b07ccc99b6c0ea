// Package validator classifies tag and attribute names of speech markup under
// a configurable strictness policy, and checks documents for unbalanced tags.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jabelic-Works/ssml-utilities/internal/tag"
)

// Mode selects which tag names are accepted
type Mode int

const (
	// Strict accepts the standard tag vocabulary only
	Strict Mode = iota
	// AllowExtendedScript also accepts names using Hiragana, Katakana and CJK
	// ideographs
	AllowExtendedScript
	// AllowASCIICustom also accepts any ASCII identifier shaped name
	AllowASCIICustom
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case AllowExtendedScript:
		return "extended"
	case AllowASCIICustom:
		return "ascii-custom"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode maps a configuration string to a Mode. The legacy upper-case
// names are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "extended", "allow_japanese":
		return AllowExtendedScript, nil
	case "ascii-custom", "allow_custom_only_en_chars":
		return AllowASCIICustom, nil
	default:
		return Strict, fmt.Errorf("unknown validation mode %q", s)
	}
}

// Options is passed to every call that depends on the policy
type Options struct {
	Mode Mode
}

// DefaultOptions returns the strict policy
func DefaultOptions() Options {
	return Options{Mode: Strict}
}

var (
	asciiTagPattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	extendedTagPattern = regexp.MustCompile(`^[a-zA-Z\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}][a-zA-Z0-9\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}_-]*$`)

	attributePattern      = regexp.MustCompile(`^(\S+?)(?:=(.+))?$`)
	attributeNamePattern  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*(?::[a-zA-Z_][a-zA-Z0-9_-]*)?$`)
	attributeValuePattern = regexp.MustCompile("^(?:\"[^\"]*\"|'[^']*'|[^\\s\"'=<>`]+)$")
)

// IsValidTagName reports whether name is acceptable under opts. A leading
// "/" is ignored so closing tag names can be passed as-is.
func IsValidTagName(name string, opts Options) bool {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return false
	}
	if IsStandardTag(name) {
		return true
	}

	switch opts.Mode {
	case AllowASCIICustom:
		return asciiTagPattern.MatchString(name)
	case AllowExtendedScript:
		return extendedTagPattern.MatchString(name)
	default:
		return false
	}
}

// IsValidAttribute checks a single `name`, `name=value`, `name="value"` or
// `name='value'` fragment. Blank input counts as valid.
func IsValidAttribute(attr string) bool {
	if strings.TrimSpace(attr) == "" {
		return true
	}

	m := attributePattern.FindStringSubmatch(attr)
	if m == nil {
		return false
	}
	if !attributeNamePattern.MatchString(m[1]) {
		return false
	}
	if m[2] != "" && !attributeValuePattern.MatchString(m[2]) {
		return false
	}
	return true
}

// IsValidTag checks a complete tag: its name under opts and every quoted
// attribute it carries
func IsValidTag(raw string, opts Options) bool {
	name, ok := tag.ExtractTagName(raw)
	if !ok || !IsValidTagName(name, opts) {
		return false
	}

	structure, _ := tag.ParseStructure(raw)
	for _, attr := range structure.Attributes {
		if !IsValidAttribute(fmt.Sprintf(`%s="%s"`, attr.Name, attr.Value)) {
			return false
		}
	}
	return true
}
