package html

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Jabelic-Works/ssml-utilities/internal/css"
)

const pageSkeleton = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title></title>
<style></style>
</head>
<body>
<pre class="` + css.PreviewClass + `"></pre>
</body>
</html>
`

// Render builds the preview document for in
func (r *Renderer) Render(in PageInput) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageSkeleton))
	if err != nil {
		return "", fmt.Errorf("failed to parse page skeleton: %w", err)
	}

	doc.Find("title").SetText(in.Title)
	doc.Find("style").SetText(in.Theme)
	doc.Find("pre." + css.PreviewClass).SetHtml(in.Fragment)

	if in.InlineStyles {
		if err := r.inlineStyles(doc, in.Theme); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	for _, node := range doc.Nodes {
		if err := html.Render(&buf, node); err != nil {
			return "", fmt.Errorf("failed to serialize HTML: %w", err)
		}
	}
	return buf.String(), nil
}

// inlineStyles resolves the theme against every body element, writes the
// result to its style attribute and removes the <style> element. Selectors
// the matcher cannot evaluate, such as :hover, never match.
func (r *Renderer) inlineStyles(doc *goquery.Document, theme string) error {
	sheet, err := r.parser.Parse(theme)
	if err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}

	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		var matched []css.Rule
		for _, rule := range sheet.Rules {
			if s.Is(rule.Selector) {
				matched = append(matched, rule)
			}
		}

		existing, _ := s.Attr("style")
		styles := css.Cascade(matched, r.parser.ParseInlineStyle(existing))
		if len(styles) > 0 {
			s.SetAttr("style", css.FormatDeclarations(styles))
		}
	})

	doc.Find("style").Remove()
	return nil
}
