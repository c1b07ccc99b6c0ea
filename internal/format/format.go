// Package format pretty-prints markup one tag per line
package format

import (
	"regexp"
	"strings"
)

var boundary = regexp.MustCompile(`>\s*<`)

// Format puts every tag on its own line, indenting the contents of open tags
// by indent spaces. Closing tags dedent; self-closing tags, comments and
// declarations leave the depth unchanged. Text between tags stays on the line
// of the preceding tag.
func Format(text string, indent int) string {
	if indent < 0 {
		indent = 0
	}
	parts := boundary.Split(text, -1)

	var (
		b     strings.Builder
		depth int
	)
	for i, part := range parts {
		line := strings.TrimSpace(part)
		if i > 0 {
			line = "<" + line
		}
		if i < len(parts)-1 {
			line += ">"
		}

		body := strings.TrimPrefix(line, "<")
		closing := strings.HasPrefix(body, "/")
		if closing && depth > 0 {
			depth--
		}

		b.WriteString(strings.Repeat(" ", depth*indent))
		b.WriteString(line)
		b.WriteByte('\n')

		if !closing && opens(line) {
			depth++
		}
	}

	return strings.TrimSpace(b.String())
}

// opens reports whether line leaves an element open
func opens(line string) bool {
	if !strings.HasPrefix(line, "<") {
		return false
	}
	body := strings.TrimPrefix(line, "<")
	if strings.HasPrefix(body, "?") || strings.HasPrefix(body, "!") {
		return false
	}

	// the tag itself ends at the first '>', anything after is text
	tagEnd := strings.Index(line, ">")
	if tagEnd < 0 {
		return true
	}
	tag := line[:tagEnd]
	if strings.HasSuffix(tag, "/") {
		return false
	}

	// an element closed on the same line, e.g. <s>text</s>
	rest := line[tagEnd+1:]
	return !strings.Contains(rest, "</")
}
