// Package highlight renders a document graph as syntax-highlighted markup:
// HTML spans for browsers and lipgloss styles for terminals.
package highlight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jabelic-Works/ssml-utilities/internal/dag"
)

// Classes are the CSS class names put on each highlighted category
type Classes struct {
	Tag            string `koanf:"tag" yaml:"tag"`
	Attribute      string `koanf:"attribute" yaml:"attribute"`
	AttributeValue string `koanf:"attribute_value" yaml:"attribute_value"`
	Text           string `koanf:"text" yaml:"text"`
	Error          string `koanf:"error" yaml:"error"`
}

// Options configures HTML highlighting
type Options struct {
	Classes Classes
}

// DefaultOptions returns the ssml-* class names
func DefaultOptions() Options {
	return Options{Classes: Classes{
		Tag:            "ssml-tag",
		Attribute:      "ssml-attribute",
		AttributeValue: "ssml-attribute-value",
		Text:           "ssml-text",
		Error:          "ssml-error",
	}}
}

// Highlight parses text and highlights the resulting graph
func Highlight(text string, opts Options) (string, error) {
	g, err := dag.Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}
	return HighlightGraph(g, opts)
}

// HighlightGraph highlights an already built graph, walking the children of
// the root in document order
func HighlightGraph(g *dag.Graph, opts Options) (string, error) {
	out, err := walk(g, g.Root(), htmlPainter{classes: opts.Classes})
	if err != nil {
		return "", fmt.Errorf("failed to highlight markup: %w", err)
	}
	return out, nil
}

// HighlightNode highlights the subtree rooted at id
func HighlightNode(g *dag.Graph, id dag.NodeID, opts Options) (string, error) {
	return walk(g, id, htmlPainter{classes: opts.Classes})
}

// Render is Highlight for display surfaces: failures are rendered as an
// escaped error span instead of being returned
func Render(text string, opts Options) string {
	out, err := Highlight(text, opts)
	if err != nil {
		return fmt.Sprintf(`<span class="%s">%s</span>`, opts.Classes.Error, Escape(err.Error()))
	}
	return out
}

var tagPattern = regexp.MustCompile(`(?s)^<(/?[^\s>]+)(.*)>?$`)

// painter turns the pieces of a walked graph into output text
type painter interface {
	escape(s string) string
	element(head, attrs, tail string) string
	attributeName(name string) string
	attributeValue(value string) string
	text(value string) string
}

// walk renders start and its non-attribute descendants in pre-order. The
// root itself renders nothing.
func walk(g *dag.Graph, start dag.NodeID, p painter) (string, error) {
	var b strings.Builder
	stack := []dag.NodeID{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, ok := g.Node(id)
		if !ok {
			return "", fmt.Errorf("node with id %s not found", id)
		}

		frag, err := renderNode(n, p)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if c, ok := g.Node(children[i]); ok && c.Kind() == dag.KindAttribute {
				continue
			}
			stack = append(stack, children[i])
		}
	}

	return b.String(), nil
}

func renderNode(n *dag.Node, p painter) (string, error) {
	switch d := n.Data.(type) {
	case dag.Root:
		return "", nil
	case dag.Element:
		return renderElement(d.Raw, p), nil
	case dag.Attribute:
		if d.Value == "" {
			return " " + p.attributeName(d.Name), nil
		}
		return " " + p.attributeName(d.Name) + `="` + p.attributeValue(d.Value) + `"`, nil
	case dag.Text:
		return p.text(d.Value), nil
	default:
		return "", fmt.Errorf("unknown node kind: %s", n.Kind())
	}
}

func renderElement(raw string, p painter) string {
	m := tagPattern.FindStringSubmatch(raw)
	if m == nil {
		return p.element(p.escape(raw), "", "")
	}
	name, rest := m[1], m[2]
	head := p.escape("<" + name)

	attrs := ExtractAttributes(raw)
	if attrs == "" {
		return p.element(head, "", p.escape(rest))
	}

	tail := ">"
	if strings.HasSuffix(strings.TrimSpace(raw), "/>") || strings.HasSuffix(strings.TrimSpace(rest), "/") {
		tail = "/>"
	}
	return p.element(head, highlightAttributes(attrs, p), p.escape(tail))
}

type htmlPainter struct {
	classes Classes
}

func (h htmlPainter) span(class, content string) string {
	return `<span class="` + class + `">` + content + `</span>`
}

func (htmlPainter) escape(s string) string { return Escape(s) }

func (h htmlPainter) element(head, attrs, tail string) string {
	return h.span(h.classes.Tag, head+attrs+tail)
}

func (h htmlPainter) attributeName(name string) string {
	return h.span(h.classes.Attribute, Escape(name))
}

func (h htmlPainter) attributeValue(value string) string {
	return h.span(h.classes.AttributeValue, Escape(value))
}

func (h htmlPainter) text(value string) string {
	return h.span(h.classes.Text, Escape(value))
}
