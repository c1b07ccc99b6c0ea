// Package lexer splits speech markup into a flat sequence of tag and text
// tokens.
//
// The scanner is forgiving: anything that starts with '<' but
// does not have the shape of a tag comes out as text, so comparison operators
// and half-typed tags survive tokenization unchanged.
package lexer

import (
	"regexp"
	"strings"
)

const (
	namePattern = `[\p{L}][\p{L}\p{N}_.:-]*`
	attrPattern = `[\p{L}_][\p{L}\p{N}_.:-]*(?:=(?:"[^"]*"|'[^']*'|[^\s"'=<>` + "`" + `]+))?`
)

var (
	openTagShape  = regexp.MustCompile(`^<` + namePattern + `(?:\s+` + attrPattern + `)*\s*/?>$`)
	closeTagShape = regexp.MustCompile(`^</` + namePattern + `\s*>$`)
)

// Classify returns the tag kind implied by the prefix and suffix of a
// complete tag. It does not check the shape of the tag.
func Classify(tag string) Kind {
	switch {
	case strings.HasPrefix(tag, "</"):
		return CloseTag
	case strings.HasSuffix(tag, "/>"):
		return SelfClosingTag
	default:
		return OpenTag
	}
}

// IsTagShape reports whether s is a complete, well-shaped tag
func IsTagShape(s string) bool {
	if strings.HasPrefix(s, "</") {
		return closeTagShape.MatchString(s)
	}
	return openTagShape.MatchString(s)
}

// Tokenize scans text into tokens.
//
// A '<' seen while a tag is already being buffered means the buffered '<' was
// not a tag start; the buffer is emitted as text and buffering restarts at
// the new '<'. A tag buffer that is still open at end of input is emitted as
// text.
func Tokenize(text string) []Token {
	var tokens []Token
	var buf strings.Builder
	inTag := false

	flush := func(kind Kind) {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: kind, Raw: buf.String()})
		buf.Reset()
	}

	for _, r := range text {
		switch {
		case r == '<':
			flush(Text)
			buf.WriteRune(r)
			inTag = true
		case r == '>' && inTag:
			buf.WriteRune(r)
			raw := buf.String()
			buf.Reset()
			inTag = false
			if IsTagShape(raw) {
				tokens = append(tokens, Token{Kind: Classify(raw), Raw: raw})
			} else {
				tokens = append(tokens, Token{Kind: Text, Raw: raw})
			}
		default:
			buf.WriteRune(r)
		}
	}
	flush(Text)

	return tokens
}
