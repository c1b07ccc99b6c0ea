package css

import (
	"fmt"
	"sort"
	"strings"
)

// cascadeEntry tracks the cascade position of a winning declaration
type cascadeEntry struct {
	specificity Specificity
	sourceOrder int
}

// Cascade resolves the declarations that apply to an element matched by
// rules, with inline declarations from its style attribute on top.
// Important beats normal, then higher specificity, then later source order.
func Cascade(rules []Rule, inline map[string]Declaration) map[string]Declaration {
	winning := make(map[string]Declaration)
	entries := make(map[string]cascadeEntry)

	apply := func(property string, decl Declaration, entry cascadeEntry) {
		existing, ok := entries[property]
		if !ok || shouldReplace(entry, existing) {
			winning[property] = decl
			entries[property] = entry
		}
	}

	for _, rule := range rules {
		for property, decl := range rule.Declarations {
			spec := rule.Specificity
			spec.Important = decl.Important
			apply(property, decl, cascadeEntry{specificity: spec, sourceOrder: rule.SourceOrder})
		}
	}

	for property, decl := range inline {
		apply(property, decl, cascadeEntry{
			specificity: SpecificityFromInline(decl.Important),
			sourceOrder: len(rules),
		})
	}
	return winning
}

// shouldReplace reports whether next beats existing
func shouldReplace(next, existing cascadeEntry) bool {
	switch next.specificity.Compare(existing.specificity) {
	case 1:
		return true
	case -1:
		return false
	}
	return next.sourceOrder >= existing.sourceOrder
}

// FormatDeclarations renders declarations as a style attribute value with
// properties sorted
func FormatDeclarations(decls map[string]Declaration) string {
	if len(decls) == 0 {
		return ""
	}

	properties := make([]string, 0, len(decls))
	for property := range decls {
		properties = append(properties, property)
	}
	sort.Strings(properties)

	parts := make([]string, 0, len(properties))
	for _, property := range properties {
		decl := decls[property]
		value := decl.Value
		if decl.Important {
			value += " !important"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", property, value))
	}
	return strings.Join(parts, "; ")
}
