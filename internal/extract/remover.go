package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jabelic-Works/ssml-utilities/internal/validator"
)

var defaultExtractor = New(DefaultOptions())

// RemoveSSMLTags returns the text of a document with every standard tag
// removed, using the default options
func RemoveSSMLTags(text string) string {
	return defaultExtractor.Extract(text).Text
}

// RemoveSpecificTags removes only the named tags. Names outside the standard
// vocabulary are ignored; matching is case-insensitive.
func RemoveSpecificTags(text string, names []string, opts Options) string {
	if text == "" || len(names) == 0 {
		return text
	}
	out := preprocess(text)

	var alternatives []string
	for _, name := range names {
		if validator.IsStandardTag(name) {
			alternatives = append(alternatives, regexp.QuoteMeta(name))
		}
	}
	if len(alternatives) == 0 {
		return out
	}

	pattern := regexp.MustCompile(fmt.Sprintf(`(?i)</?(?:%s)(?:\s[^>]*)?/?>`, strings.Join(alternatives, "|")))
	return postprocess(pattern.ReplaceAllString(out, ""), opts)
}

// ExtractTextFromTag returns the text content of every name element in
// document order, with nested tags removed. Empty contents are skipped. In
// strict mode a non-standard name yields nothing.
func ExtractTextFromTag(text, name string, v validator.Options) []string {
	if text == "" || name == "" {
		return nil
	}
	if v.Mode == validator.Strict && !validator.IsStandardTag(name) {
		return nil
	}

	quoted := regexp.QuoteMeta(name)
	pattern := regexp.MustCompile(fmt.Sprintf(`(?is)<%s(?:\s[^>]*)?>(.*?)</%s>`, quoted, quoted))

	opts := DefaultOptions()
	opts.Validation = v

	var out []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		content := defaultExtractor.ExtractWith(m[1], opts).Text
		if strings.TrimSpace(content) != "" {
			out = append(out, content)
		}
	}
	return out
}

var tagShapePattern = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9:-]*)[^>]*>`)

// IsValidStructure reports whether open and close tags are balanced. In
// strict mode only standard tags take part in the check. Empty input is
// not a valid document.
func IsValidStructure(text string, v validator.Options) bool {
	if text == "" {
		return false
	}

	var open []string
	for _, m := range tagShapePattern.FindAllStringSubmatch(text, -1) {
		full, name := m[0], m[1]
		if v.Mode == validator.Strict && !validator.IsStandardTag(name) {
			continue
		}

		switch {
		case strings.HasSuffix(full, "/>"):
		case strings.HasPrefix(full, "</"):
			if len(open) == 0 || open[len(open)-1] != name {
				return false
			}
			open = open[:len(open)-1]
		default:
			open = append(open, name)
		}
	}
	return len(open) == 0
}
