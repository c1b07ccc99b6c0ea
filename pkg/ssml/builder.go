package ssml

import (
	"strings"

	"golang.org/x/net/html"
)

// EmphasisLevel is the level attribute of <emphasis>
type EmphasisLevel string

const (
	EmphasisStrong   EmphasisLevel = "strong"
	EmphasisModerate EmphasisLevel = "moderate"
	EmphasisReduced  EmphasisLevel = "reduced"
)

// ProsodyOptions are the attributes of <prosody>. Empty fields are omitted.
type ProsodyOptions struct {
	Rate   string
	Pitch  string
	Volume string
}

// Builder accumulates fragments and wraps them in <speak>
type Builder struct {
	parts []string
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends content verbatim
func (b *Builder) Add(content string) *Builder {
	b.parts = append(b.parts, content)
	return b
}

// Build returns the accumulated fragments inside a <speak> element
func (b *Builder) Build() string {
	return "<speak>" + strings.Join(b.parts, "") + "</speak>"
}

// Reset drops every fragment
func (b *Builder) Reset() {
	b.parts = b.parts[:0]
}

// Say returns text unchanged. Text arguments of the helpers are inserted
// verbatim so fragments can nest; attribute values are escaped.
func Say(text string) string {
	return text
}

// Pause returns a <break> of the given duration, e.g. "500ms"
func Pause(duration string) string {
	return `<break time="` + html.EscapeString(duration) + `"/>`
}

// Audio returns an <audio> element for src
func Audio(src string) string {
	return `<audio src="` + html.EscapeString(src) + `"/>`
}

// Emphasis wraps text in <emphasis>
func Emphasis(level EmphasisLevel, text string) string {
	return `<emphasis level="` + html.EscapeString(string(level)) + `">` + text + "</emphasis>"
}

// Prosody wraps text in <prosody>
func Prosody(opts ProsodyOptions, text string) string {
	var b strings.Builder
	b.WriteString("<prosody")
	for _, attr := range [][2]string{{"rate", opts.Rate}, {"pitch", opts.Pitch}, {"volume", opts.Volume}} {
		if attr[1] == "" {
			continue
		}
		b.WriteString(" " + attr[0] + `="` + html.EscapeString(attr[1]) + `"`)
	}
	b.WriteString(">" + text + "</prosody>")
	return b.String()
}

// SayAs wraps text in <say-as> with the given interpretation
func SayAs(interpretAs, text string) string {
	return `<say-as interpret-as="` + html.EscapeString(interpretAs) + `">` + text + "</say-as>"
}
