package lexer

import "fmt"

// Kind identifies the lexical category of a Token
type Kind int

const (
	// Text is a run of character data, including anything that looked like a
	// tag but did not pass the tag-shape check
	Text Kind = iota
	// OpenTag is a start tag such as <speak>
	OpenTag
	// CloseTag is an end tag such as </speak>
	CloseTag
	// SelfClosingTag is an empty-element tag such as <break time="1s"/>
	SelfClosingTag
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case OpenTag:
		return "openTag"
	case CloseTag:
		return "closeTag"
	case SelfClosingTag:
		return "selfClosingTag"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsTag reports whether the kind is one of the three tag kinds
func (k Kind) IsTag() bool {
	return k == OpenTag || k == CloseTag || k == SelfClosingTag
}

// Token is one lexical unit of the markup, in document order.
// Raw always holds the exact source text, so concatenating the Raw fields of
// a token sequence reproduces the input.
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Raw  string `json:"raw" yaml:"raw"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Raw)
}

// MarshalText renders the kind by name in JSON and YAML output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
