package highlight

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	selfClosingHead = regexp.MustCompile(`(?s)^<([^\s/>]+).*?/>`)
	openHead        = regexp.MustCompile(`(?s)^<([^\s/>]+).*?>`)

	leadingSpace   = regexp.MustCompile(`^\s+`)
	attributeName  = regexp.MustCompile(`^\w[\w:.-]*`)
	attributeValue = regexp.MustCompile(`^(\s*=\s*)(?:("[^"]*"|'[^']*')|(\S+))`)
)

// ExtractAttributes returns the raw attribute segment of a tag: everything
// after the tag name up to the last "/>" for self-closing tags, or the last
// ">" otherwise. Whitespace is kept as written. Closing tags and non-tags
// yield "".
func ExtractAttributes(raw string) string {
	if m := selfClosingHead.FindStringSubmatch(raw); m != nil {
		return raw[len(m[1])+1 : strings.LastIndex(raw, "/>")]
	}
	if m := openHead.FindStringSubmatch(raw); m != nil {
		return raw[len(m[1])+1 : strings.LastIndex(raw, ">")]
	}
	return ""
}

// HighlightAttributes wraps attribute names and values of a raw attribute
// segment in spans. Whitespace and quote characters are reproduced exactly;
// anything that is not an attribute is escaped and passed through.
func HighlightAttributes(attrs string, opts Options) string {
	return highlightAttributes(attrs, htmlPainter{classes: opts.Classes})
}

func highlightAttributes(attrs string, p painter) string {
	var b strings.Builder
	rest := attrs

	for rest != "" {
		if m := leadingSpace.FindString(rest); m != "" {
			b.WriteString(m)
			rest = rest[len(m):]
			continue
		}

		if name := attributeName.FindString(rest); name != "" {
			b.WriteString(p.attributeName(name))
			rest = rest[len(name):]

			m := attributeValue.FindStringSubmatch(rest)
			if m == nil {
				continue
			}
			b.WriteString(p.escape(m[1]))
			if quoted := m[2]; quoted != "" {
				quote := quoted[:1]
				b.WriteString(quote)
				b.WriteString(p.attributeValue(quoted[1 : len(quoted)-1]))
				b.WriteString(quote)
			} else {
				b.WriteString(p.attributeValue(m[3]))
			}
			rest = rest[len(m[0]):]
			continue
		}

		_, size := utf8.DecodeRuneInString(rest)
		b.WriteString(p.escape(rest[:size]))
		rest = rest[size:]
	}

	return b.String()
}
