package highlight

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jabelic-Works/ssml-utilities/internal/dag"
)

// TerminalStyles are the lipgloss styles used for ANSI output
type TerminalStyles struct {
	Tag            lipgloss.Style
	Attribute      lipgloss.Style
	AttributeValue lipgloss.Style
	Text           lipgloss.Style
}

// DefaultTerminalStyles mirrors the colors of the built-in preview theme
func DefaultTerminalStyles() TerminalStyles {
	return TerminalStyles{
		Tag:            lipgloss.NewStyle().Foreground(lipgloss.Color("#5f87ff")).Bold(true),
		Attribute:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa500")),
		AttributeValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#00af00")),
		Text:           lipgloss.NewStyle(),
	}
}

// Terminal parses text and renders it with ANSI styling. With styling
// disabled by the color profile the output equals the input.
func Terminal(text string, styles TerminalStyles) (string, error) {
	g, err := dag.Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}
	out, err := walk(g, g.Root(), terminalPainter{styles: styles})
	if err != nil {
		return "", fmt.Errorf("failed to highlight markup: %w", err)
	}
	return out, nil
}

type terminalPainter struct {
	styles TerminalStyles
}

// paint styles s line by line; lipgloss would otherwise pad multi-line
// blocks to a common width
func paint(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (terminalPainter) escape(s string) string { return s }

func (t terminalPainter) element(head, attrs, tail string) string {
	return paint(t.styles.Tag, head) + attrs + paint(t.styles.Tag, tail)
}

func (t terminalPainter) attributeName(name string) string {
	return paint(t.styles.Attribute, name)
}

func (t terminalPainter) attributeValue(value string) string {
	return paint(t.styles.AttributeValue, value)
}

func (t terminalPainter) text(value string) string {
	return paint(t.styles.Text, value)
}
