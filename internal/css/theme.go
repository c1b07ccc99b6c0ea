package css

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jabelic-Works/ssml-utilities/internal/highlight"
)

// PreviewClass is the class of the <pre> element holding highlighted markup
const PreviewClass = "ssml-preview"

// DefaultTheme returns the built-in stylesheet for the given highlight classes
func DefaultTheme(classes highlight.Classes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pre.%s { font-family: monospace; white-space: pre-wrap; padding: 1em; background-color: #fafafa; }\n", PreviewClass)
	fmt.Fprintf(&b, ".%s { color: #000fff; }\n", classes.Tag)
	fmt.Fprintf(&b, ".%s { color: #FFA500; }\n", classes.Attribute)
	fmt.Fprintf(&b, ".%s { color: #008000; }\n", classes.AttributeValue)
	fmt.Fprintf(&b, ".%s { color: #000; }\n", classes.Text)
	fmt.Fprintf(&b, ".%s { color: #d00000; text-decoration: underline; }\n", classes.Error)
	return b.String()
}

// TerminalStyles translates the theme rules for each highlight class into
// lipgloss styles. Color, background-color, font-weight, font-style and
// text-decoration are honored; everything else is ignored.
func TerminalStyles(sheet *Stylesheet, classes highlight.Classes) highlight.TerminalStyles {
	resolve := func(class string) lipgloss.Style {
		return terminalStyle(Cascade(sheet.ForClass(class), nil))
	}
	return highlight.TerminalStyles{
		Tag:            resolve(classes.Tag),
		Attribute:      resolve(classes.Attribute),
		AttributeValue: resolve(classes.AttributeValue),
		Text:           resolve(classes.Text),
	}
}

func terminalStyle(decls map[string]Declaration) lipgloss.Style {
	style := lipgloss.NewStyle()
	if d, ok := decls["color"]; ok {
		if c, ok := terminalColor(d.Value); ok {
			style = style.Foreground(c)
		}
	}
	if d, ok := decls["background-color"]; ok {
		if c, ok := terminalColor(d.Value); ok {
			style = style.Background(c)
		}
	}
	if d, ok := decls["font-weight"]; ok {
		switch v := strings.ToLower(d.Value); v {
		case "bold", "bolder":
			style = style.Bold(true)
		default:
			if n, err := strconv.Atoi(v); err == nil && n >= 600 {
				style = style.Bold(true)
			}
		}
	}
	if d, ok := decls["font-style"]; ok && strings.EqualFold(d.Value, "italic") {
		style = style.Italic(true)
	}
	if d, ok := decls["text-decoration"]; ok {
		v := strings.ToLower(d.Value)
		if strings.Contains(v, "underline") {
			style = style.Underline(true)
		}
		if strings.Contains(v, "line-through") {
			style = style.Strikethrough(true)
		}
	}
	return style
}

var (
	shortHex   = regexp.MustCompile(`^#([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
	longHex    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

	namedColors = map[string]string{
		"black":   "#000000",
		"white":   "#ffffff",
		"red":     "#ff0000",
		"green":   "#008000",
		"blue":    "#0000ff",
		"orange":  "#ffa500",
		"yellow":  "#ffff00",
		"purple":  "#800080",
		"gray":    "#808080",
		"grey":    "#808080",
		"navy":    "#000080",
		"teal":    "#008080",
		"maroon":  "#800000",
		"silver":  "#c0c0c0",
		"magenta": "#ff00ff",
		"cyan":    "#00ffff",
	}
)

// terminalColor converts a CSS color value to a lipgloss color
func terminalColor(value string) (lipgloss.Color, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if hex, ok := namedColors[value]; ok {
		return lipgloss.Color(hex), true
	}
	if m := shortHex.FindStringSubmatch(value); m != nil {
		return lipgloss.Color("#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3]), true
	}
	if longHex.MatchString(value) {
		return lipgloss.Color(value), true
	}
	if m := rgbPattern.FindStringSubmatch(value); m != nil {
		var rgb [3]int
		for i := range rgb {
			n, _ := strconv.Atoi(m[i+1])
			if n > 255 {
				return "", false
			}
			rgb[i] = n
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), true
	}
	return "", false
}
