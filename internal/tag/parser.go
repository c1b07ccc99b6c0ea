// Package tag parses the inside of a single markup tag: its name, its
// attributes and whether it opens, closes or self-closes.
//
// Parsing is structural only. Whether a name is acceptable is decided by
// package validator.
package tag

import (
	"regexp"
	"strings"
	"unicode"
)

// Attribute is one name/value pair parsed from a tag
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Structure is the parsed form of a complete tag
type Structure struct {
	Name        string      // tag name without brackets or slash
	Attributes  []Attribute // attributes in source order; always empty for closing tags
	SelfClosing bool        // tag ends with "/>"
	Closing     bool        // tag starts with "</"
	RawContent  string      // everything between '<' and '>'
}

// attributeRegex accepts letter/underscore-initial names with one optional
// namespace level and quoted values only
var attributeRegex = regexp.MustCompile(`(?:^|\s)([a-zA-Z_][\w-]*(?::\w[\w-]*)?)=(?:"([^"]*)"|'([^']*)')`)

// content returns the text between the angle brackets, or false when tag is
// not bracketed, is empty, or starts with a space
func content(tag string) (string, bool) {
	if len(tag) < 2 || !strings.HasPrefix(tag, "<") || !strings.HasSuffix(tag, ">") {
		return "", false
	}
	c := tag[1 : len(tag)-1]
	if c == "" || strings.HasPrefix(c, " ") || strings.HasPrefix(c, "　") {
		return "", false
	}
	return c, true
}

// firstField returns s up to the first whitespace rune
func firstField(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}

// ExtractTagName returns the name of a complete tag such as "<speak>",
// "</speak>" or "<break time='1s'/>"
func ExtractTagName(tag string) (string, bool) {
	c, ok := content(tag)
	if !ok {
		return "", false
	}

	if strings.HasPrefix(c, "/") {
		name := firstField(c[1:])
		return name, name != ""
	}

	if strings.HasSuffix(c, "/") {
		c = strings.TrimSpace(c[:len(c)-1])
	}
	name := firstField(c)
	return name, name != ""
}

// ParseStructure parses a complete tag into its name, attributes and kind
func ParseStructure(tag string) (Structure, bool) {
	c, ok := content(tag)
	if !ok {
		return Structure{}, false
	}
	name, ok := ExtractTagName(tag)
	if !ok {
		return Structure{}, false
	}

	if strings.HasPrefix(c, "/") {
		return Structure{
			Name:       name,
			Attributes: []Attribute{},
			Closing:    true,
			RawContent: c,
		}, true
	}

	selfClosing := strings.HasSuffix(c, "/")
	body := c
	if selfClosing {
		body = strings.TrimSpace(c[:len(c)-1])
	}

	return Structure{
		Name:        name,
		Attributes:  ParseAttributes(body),
		SelfClosing: selfClosing,
		RawContent:  c,
	}, true
}

// ParseAttributes extracts the well-formed name="value" and name='value'
// pairs from the inside of a tag. Malformed fragments are skipped.
func ParseAttributes(tagContent string) []Attribute {
	attributes := []Attribute{}
	for _, m := range attributeRegex.FindAllStringSubmatchIndex(tagContent, -1) {
		attr := Attribute{Name: tagContent[m[2]:m[3]]}
		switch {
		case m[4] >= 0:
			attr.Value = tagContent[m[4]:m[5]]
		case m[6] >= 0:
			attr.Value = tagContent[m[6]:m[7]]
		}
		attributes = append(attributes, attr)
	}
	return attributes
}

// MatchingPair reports whether closeTag closes openTag, comparing names only
func MatchingPair(openTag, closeTag string) bool {
	openName, ok := ExtractTagName(openTag)
	if !ok {
		return false
	}
	closeName, ok := ExtractTagName(closeTag)
	if !ok {
		return false
	}
	return openName == closeName
}
