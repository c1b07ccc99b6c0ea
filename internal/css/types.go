// Package css parses the highlight theme stylesheet and resolves the
// cascade for the preview page and the terminal painter.
package css

import (
	"fmt"
	"strings"
)

// Specificity of a selector: inline, IDs, classes/attributes/pseudo-classes,
// elements/pseudo-elements
type Specificity struct {
	Inline    int  // style="" attribute (1000 when present)
	IDs       int  // #id
	Classes   int  // .class, [attr], :pseudo-class
	Elements  int  // element, ::pseudo-element
	Important bool // !important
}

// Compare returns -1 if s < other, 0 if equal, 1 if s > other.
// Important always wins regardless of the counts.
func (s Specificity) Compare(other Specificity) int {
	if s.Important != other.Important {
		if s.Important {
			return 1
		}
		return -1
	}

	for _, pair := range [][2]int{
		{s.Inline, other.Inline},
		{s.IDs, other.IDs},
		{s.Classes, other.Classes},
		{s.Elements, other.Elements},
	} {
		if pair[0] != pair[1] {
			if pair[0] > pair[1] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (s Specificity) String() string {
	important := ""
	if s.Important {
		important = " !important"
	}
	return fmt.Sprintf("(%d,%d,%d,%d)%s", s.Inline, s.IDs, s.Classes, s.Elements, important)
}

// Rule is a single selector with its declarations
type Rule struct {
	Selector     string                 // original selector text
	Specificity  Specificity            // calculated specificity
	Declarations map[string]Declaration // property -> declaration
	SourceOrder  int                    // position in the stylesheet
}

// Declaration is a single property declaration
type Declaration struct {
	Property  string // lowercased property name
	Value     string
	Important bool
}

// Stylesheet holds every rule in source order
type Stylesheet struct {
	Rules []Rule
}

// String serializes the stylesheet, one rule per line with sorted
// properties
func (s *Stylesheet) String() string {
	var b strings.Builder
	for _, rule := range s.Rules {
		fmt.Fprintf(&b, "%s { %s; }\n", rule.Selector, FormatDeclarations(rule.Declarations))
	}
	return b.String()
}

// ForClass returns the rules whose last compound selector names class, in
// source order. A selector list such as ".a, .b" is split first.
func (s *Stylesheet) ForClass(class string) []Rule {
	var out []Rule
	for _, rule := range s.Rules {
		for _, sel := range strings.Split(rule.Selector, ",") {
			fields := strings.Fields(sel)
			if len(fields) == 0 {
				continue
			}
			if hasClass(fields[len(fields)-1], class) {
				out = append(out, rule)
				break
			}
		}
	}
	return out
}

// hasClass reports whether the compound selector carries .class
func hasClass(compound, class string) bool {
	for _, part := range strings.Split(compound, ".")[1:] {
		name := part
		if i := strings.IndexAny(name, ":[#>+~"); i >= 0 {
			name = name[:i]
		}
		if name == class {
			return true
		}
	}
	return false
}
