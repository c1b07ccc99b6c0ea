package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Issue is one document-level finding. Line is always 1: the document is
// treated as a single logical line and Column is a rune offset into it.
type Issue struct {
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// Result of ValidateDocument
type Result struct {
	Valid  bool    `json:"valid" yaml:"valid"`
	Errors []Issue `json:"errors" yaml:"errors"`
}

var documentTagRegex = regexp.MustCompile(`<(/?)([\w:-]+)([^>]*)>`)

// ValidateDocument scans text for closing tags that do not match the most
// recent open tag and for tags left open at the end
func ValidateDocument(text string) Result {
	var (
		issues []Issue
		stack  []string
	)

	for _, m := range documentTagRegex.FindAllStringSubmatchIndex(text, -1) {
		closing := m[3] > m[2]
		name := text[m[4]:m[5]]
		attrs := text[m[6]:m[7]]

		if !closing {
			if !strings.HasSuffix(attrs, "/") {
				stack = append(stack, name)
			}
			continue
		}

		var top string
		if n := len(stack); n > 0 {
			top = stack[n-1]
			stack = stack[:n-1]
		}
		if top != name {
			issues = append(issues, Issue{
				Message: fmt.Sprintf("mismatched closing tag: %s", name),
				Line:    1,
				Column:  utf8.RuneCountInString(text[:m[0]]),
			})
		}
	}

	if len(stack) > 0 {
		issues = append(issues, Issue{
			Message: fmt.Sprintf("unclosed tags: %s", strings.Join(stack, ", ")),
			Line:    1,
			Column:  utf8.RuneCountInString(text),
		})
	}

	return Result{Valid: len(issues) == 0, Errors: issues}
}
