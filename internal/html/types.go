// Package html assembles the standalone preview page for highlighted markup
package html

import "github.com/Jabelic-Works/ssml-utilities/internal/css"

// PageInput describes a preview page
type PageInput struct {
	// Title of the page, escaped on output
	Title string

	// Fragment is highlighted HTML placed inside the preview <pre>
	Fragment string

	// Theme is the stylesheet applied to the fragment
	Theme string

	// InlineStyles copies the theme into style attributes and drops the
	// <style> element, for viewers that ignore stylesheets
	InlineStyles bool
}

// Renderer builds preview pages
type Renderer struct {
	parser *css.Parser
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{parser: css.NewParser()}
}
