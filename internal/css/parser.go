package css

import (
	"fmt"
	"regexp"
	"strings"
)

// Parser handles CSS parsing and specificity calculation
type Parser struct {
	ruleRegex      *regexp.Regexp
	importantRegex *regexp.Regexp
	commentRegex   *regexp.Regexp
	atRuleRegex    *regexp.Regexp

	idRegex            *regexp.Regexp
	classRegex         *regexp.Regexp
	attrRegex          *regexp.Regexp
	pseudoClassRegex   *regexp.Regexp
	elementRegex       *regexp.Regexp
	pseudoElementRegex *regexp.Regexp
}

// NewParser creates a parser with compiled regexes
func NewParser() *Parser {
	return &Parser{
		// selector { declarations }
		ruleRegex:      regexp.MustCompile(`([^{}]+)\{([^}]*)\}`),
		importantRegex: regexp.MustCompile(`!\s*important\s*$`),
		commentRegex:   regexp.MustCompile(`/\*[^*]*\*+([^/*][^*]*\*+)*/`),
		atRuleRegex:    regexp.MustCompile(`@(import|charset|namespace)[^;]*;`),

		idRegex:            regexp.MustCompile(`#[a-zA-Z0-9_-]+`),
		classRegex:         regexp.MustCompile(`\.[a-zA-Z0-9_-]+`),
		attrRegex:          regexp.MustCompile(`\[[^\]]*\]`),
		pseudoClassRegex:   regexp.MustCompile(`::?[a-zA-Z0-9_-]+`),
		elementRegex:       regexp.MustCompile(`(?:^|[\s>+~,])([a-zA-Z][a-zA-Z0-9-]*)`),
		pseudoElementRegex: regexp.MustCompile(`::[a-zA-Z0-9_-]+`),
	}
}

// Parse parses a stylesheet. Comments and statement at-rules are dropped,
// block at-rules such as @media are skipped whole. Rules without
// declarations are omitted.
func (p *Parser) Parse(cssText string) (*Stylesheet, error) {
	cssText = p.commentRegex.ReplaceAllString(cssText, "")
	cssText = p.atRuleRegex.ReplaceAllString(cssText, "")

	cssText, err := skipBlockAtRules(cssText)
	if err != nil {
		return nil, err
	}

	sheet := &Stylesheet{Rules: make([]Rule, 0)}
	for _, match := range p.ruleRegex.FindAllStringSubmatch(cssText, -1) {
		selector := strings.TrimSpace(match[1])
		if selector == "" {
			continue
		}
		declarations := p.parseDeclarations(match[2])
		if len(declarations) == 0 {
			continue
		}

		sheet.Rules = append(sheet.Rules, Rule{
			Selector:     selector,
			Specificity:  p.calculateSpecificity(selector),
			Declarations: declarations,
			SourceOrder:  len(sheet.Rules),
		})
	}
	return sheet, nil
}

// ParseInlineStyle parses the contents of a style attribute
func (p *Parser) ParseInlineStyle(styleAttr string) map[string]Declaration {
	return p.parseDeclarations(styleAttr)
}

// parseDeclarations parses a declaration block. Malformed declarations are
// skipped.
func (p *Parser) parseDeclarations(block string) map[string]Declaration {
	declarations := make(map[string]Declaration)

	for _, part := range smartSplit(block, ';') {
		part = strings.TrimSpace(part)
		colon := findUnquotedChar(part, ':')
		if colon == -1 {
			continue
		}

		property := strings.ToLower(strings.TrimSpace(part[:colon]))
		value := strings.TrimSpace(part[colon+1:])
		if property == "" || value == "" {
			continue
		}

		important := p.importantRegex.MatchString(value)
		if important {
			value = strings.TrimSpace(p.importantRegex.ReplaceAllString(value, ""))
		}

		declarations[property] = Declaration{
			Property:  property,
			Value:     value,
			Important: important,
		}
	}
	return declarations
}

// calculateSpecificity counts the parts of selector. For a selector list the
// most specific member wins.
func (p *Parser) calculateSpecificity(selector string) Specificity {
	var best Specificity
	for _, sel := range strings.Split(selector, ",") {
		sel = strings.TrimSpace(sel)

		// attribute selectors may hold anything, drop them before counting
		// the rest
		bare := p.attrRegex.ReplaceAllString(sel, "")
		spec := Specificity{
			IDs:      len(p.idRegex.FindAllString(bare, -1)),
			Classes:  len(p.classRegex.FindAllString(bare, -1)) + len(p.attrRegex.FindAllString(sel, -1)),
			Elements: len(p.pseudoElementRegex.FindAllString(bare, -1)),
		}
		for _, match := range p.pseudoClassRegex.FindAllString(bare, -1) {
			if !strings.HasPrefix(match, "::") {
				spec.Classes++
			}
		}
		bare = p.pseudoClassRegex.ReplaceAllString(bare, "")
		spec.Elements += len(p.elementRegex.FindAllString(bare, -1))

		if spec.Compare(best) > 0 {
			best = spec
		}
	}
	return best
}

// skipBlockAtRules removes @media, @font-face and similar blocks including
// their nested rules
func skipBlockAtRules(css string) (string, error) {
	var b strings.Builder
	for {
		start := strings.IndexByte(css, '@')
		if start < 0 {
			b.WriteString(css)
			return b.String(), nil
		}
		b.WriteString(css[:start])

		open := strings.IndexByte(css[start:], '{')
		if open < 0 {
			return "", fmt.Errorf("failed to parse at-rule: missing block")
		}
		depth, i := 0, start+open
		for ; i < len(css); i++ {
			switch css[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			return "", fmt.Errorf("failed to parse at-rule: unbalanced braces")
		}
		css = css[i+1:]
	}
}

// smartSplit splits s on delimiter outside quoted strings
func smartSplit(s string, delimiter rune) []string {
	var (
		parts     []string
		current   strings.Builder
		inQuotes  bool
		quoteChar rune
	)

	for _, char := range s {
		switch {
		case !inQuotes && (char == '"' || char == '\''):
			inQuotes = true
			quoteChar = char
			current.WriteRune(char)
		case inQuotes && char == quoteChar:
			inQuotes = false
			current.WriteRune(char)
		case !inQuotes && char == delimiter:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// findUnquotedChar returns the byte index of the first char outside quotes,
// or -1
func findUnquotedChar(s string, char rune) int {
	var (
		inQuotes  bool
		quoteChar rune
	)
	for i, c := range s {
		switch {
		case !inQuotes && (c == '"' || c == '\''):
			inQuotes = true
			quoteChar = c
		case inQuotes && c == quoteChar:
			inQuotes = false
		case !inQuotes && c == char:
			return i
		}
	}
	return -1
}

// SpecificityFromInline returns the specificity of a style attribute
func SpecificityFromInline(important bool) Specificity {
	return Specificity{Inline: 1000, Important: important}
}
