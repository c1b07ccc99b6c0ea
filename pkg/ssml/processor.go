// Package ssml is the public entry point of the toolkit: a Processor that
// tokenizes, parses, highlights, validates, extracts and formats speech
// markup, plus a small builder for producing it.
package ssml

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Jabelic-Works/ssml-utilities/internal/config"
	"github.com/Jabelic-Works/ssml-utilities/internal/css"
	"github.com/Jabelic-Works/ssml-utilities/internal/dag"
	"github.com/Jabelic-Works/ssml-utilities/internal/extract"
	"github.com/Jabelic-Works/ssml-utilities/internal/format"
	"github.com/Jabelic-Works/ssml-utilities/internal/highlight"
	"github.com/Jabelic-Works/ssml-utilities/internal/html"
	"github.com/Jabelic-Works/ssml-utilities/internal/lexer"
	"github.com/Jabelic-Works/ssml-utilities/internal/logging"
	"github.com/Jabelic-Works/ssml-utilities/internal/tag"
	"github.com/Jabelic-Works/ssml-utilities/internal/validator"
)

// Processor runs every markup operation under one configuration
type Processor struct {
	config    config.Config
	logger    *slog.Logger
	extractor *extract.Extractor
	renderer  *html.Renderer
	cssParser *css.Parser
}

// New creates a processor. A nil logger discards everything.
func New(cfg config.Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Processor{
		config:    cfg,
		logger:    logger,
		extractor: extract.New(cfg.ExtractOptions()),
		renderer:  html.NewRenderer(),
		cssParser: css.NewParser(),
	}
}

// NewWithDefaults creates a processor with the built-in configuration
func NewWithDefaults() *Processor {
	return New(config.Default(), nil)
}

// Config returns the configuration the processor was built with
func (p *Processor) Config() config.Config {
	return p.config
}

// Tokens splits text into lexical tokens
func (p *Processor) Tokens(text string) []lexer.Token {
	return lexer.Tokenize(text)
}

// Parse builds the document graph of text
func (p *Processor) Parse(text string) (*dag.Graph, error) {
	g, err := dag.Parse(text)
	if err != nil {
		p.logger.Debug("graph construction failed", "error", err)
		return nil, err
	}
	p.logger.Debug("parsed markup", "bytes", len(text), "nodes", g.Len())
	return g, nil
}

// Graph returns the debug listing of the document graph
func (p *Processor) Graph(text string) (string, error) {
	g, err := p.Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}
	return g.DebugPrint(), nil
}

// Highlight returns text as HTML with the configured classes
func (p *Processor) Highlight(text string) (string, error) {
	return highlight.Highlight(text, p.config.HighlightOptions())
}

// Render highlights text, substituting an error span on failure
func (p *Processor) Render(text string) string {
	return highlight.Render(text, p.config.HighlightOptions())
}

// Terminal highlights text with ANSI styling. A configured theme overrides
// the default colors.
func (p *Processor) Terminal(text string) (string, error) {
	styles := highlight.DefaultTerminalStyles()
	if p.config.Preview.Theme != "" {
		theme, err := p.Theme()
		if err != nil {
			return "", err
		}
		sheet, err := p.cssParser.Parse(theme)
		if err != nil {
			return "", fmt.Errorf("failed to parse theme: %w", err)
		}
		styles = css.TerminalStyles(sheet, p.config.Highlight)
	}
	return highlight.Terminal(text, styles)
}

// Extract returns the spoken text of a document
func (p *Processor) Extract(text string) extract.Result {
	res := p.extractor.Extract(text)
	if !res.ParseSuccess && text != "" {
		p.logger.Warn("graph construction failed, used pattern fallback", "bytes", len(text))
	}
	p.logger.Debug("extracted text",
		"nodes", res.ProcessedNodes,
		"removed", len(res.RemovedTags),
		"preserved", len(res.PreservedElements))
	return res
}

// RemoveTags removes only the named standard tags from text
func (p *Processor) RemoveTags(text string, names []string) string {
	return extract.RemoveSpecificTags(text, names, p.config.ExtractOptions())
}

// TextFromTag returns the text content of every name element
func (p *Processor) TextFromTag(text, name string) []string {
	return extract.ExtractTextFromTag(text, name, p.config.ValidatorOptions())
}

// TagFinding is the verdict on a single tag of a document
type TagFinding struct {
	Tag   string     `json:"tag" yaml:"tag"`
	Name  string     `json:"name" yaml:"name"`
	Kind  lexer.Kind `json:"kind" yaml:"kind"`
	Valid bool       `json:"valid" yaml:"valid"`
}

// Report combines the structural check with per-tag name and attribute
// checks under the configured mode
type Report struct {
	Valid     bool             `json:"valid" yaml:"valid"`
	Mode      string           `json:"mode" yaml:"mode"`
	Structure validator.Result `json:"structure" yaml:"structure"`
	Tags      []TagFinding     `json:"tags" yaml:"tags"`
}

// InvalidTags returns the findings that failed
func (r Report) InvalidTags() []TagFinding {
	var out []TagFinding
	for _, f := range r.Tags {
		if !f.Valid {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks tag balance and every tag of text
func (p *Processor) Validate(text string) Report {
	opts := p.config.ValidatorOptions()
	report := Report{
		Mode:      opts.Mode.String(),
		Structure: validator.ValidateDocument(text),
		Tags:      []TagFinding{},
	}
	report.Valid = report.Structure.Valid

	for _, tok := range lexer.Tokenize(text) {
		if !tok.Kind.IsTag() {
			continue
		}
		name, _ := tag.ExtractTagName(tok.Raw)
		valid := validator.IsValidTag(tok.Raw, opts)
		if tok.Kind == lexer.CloseTag {
			valid = validator.IsValidTagName(name, opts)
		}
		if !valid {
			report.Valid = false
		}
		report.Tags = append(report.Tags, TagFinding{Tag: tok.Raw, Name: name, Kind: tok.Kind, Valid: valid})
	}

	p.logger.Debug("validated markup", "valid", report.Valid, "issues", len(report.Structure.Errors), "tags", len(report.Tags))
	return report
}

// Format pretty-prints text with the configured indent
func (p *Processor) Format(text string) string {
	return format.Format(text, p.config.Format.Indent)
}

// Theme returns the preview stylesheet: the configured theme file, or the
// built-in theme for the configured classes
func (p *Processor) Theme() (string, error) {
	if p.config.Preview.Theme == "" {
		return css.DefaultTheme(p.config.Highlight), nil
	}
	b, err := os.ReadFile(p.config.Preview.Theme)
	if err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	return string(b), nil
}

// Preview returns a standalone HTML page showing text highlighted
func (p *Processor) Preview(text string) (string, error) {
	theme, err := p.Theme()
	if err != nil {
		return "", err
	}

	page, err := p.renderer.Render(html.PageInput{
		Title:        p.config.Preview.Title,
		Fragment:     p.Render(text),
		Theme:        theme,
		InlineStyles: p.config.Preview.InlineStyles,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return page, nil
}
