package main

import (
	"fmt"
	"strings"

	"github.com/Jabelic-Works/ssml-utilities/internal/validator"
	"github.com/Jabelic-Works/ssml-utilities/pkg/ssml"
)

// validationText renders a validation report for humans
func validationText(valid bool, mode string, issues []validator.Issue, invalid []ssml.TagFinding) string {
	if valid {
		return fmt.Sprintf("✓ valid (%s)", mode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✗ found %d issues (%s):\n", len(issues)+len(invalid), mode)
	for _, issue := range issues {
		fmt.Fprintf(&b, "  [structure] %d:%d %s\n", issue.Line, issue.Column, issue.Message)
	}
	for _, f := range invalid {
		fmt.Fprintf(&b, "  [tag] %s: %q is not allowed\n", f.Tag, f.Name)
	}
	return b.String()
}
