// Package extract recovers the spoken text of a markup document by dropping
// recognized speech tags and keeping everything else verbatim.
package extract

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/Jabelic-Works/ssml-utilities/internal/dag"
	"github.com/Jabelic-Works/ssml-utilities/internal/validator"
)

// Options controls how extracted text is post-processed and which tags are
// recognized
type Options struct {
	PreserveNewlines bool              `koanf:"preserve_newlines" yaml:"preserve_newlines"`
	NormalizeSpaces  bool              `koanf:"normalize_spaces" yaml:"normalize_spaces"`
	Trim             bool              `koanf:"trim" yaml:"trim"`
	Validation       validator.Options `koanf:"-" yaml:"-"`
	CustomTags       []string          `koanf:"custom_tags" yaml:"custom_tags"`
}

// DefaultOptions keeps newlines, collapses runs of spaces, trims and only
// recognizes the standard vocabulary
func DefaultOptions() Options {
	return Options{
		PreserveNewlines: true,
		NormalizeSpaces:  true,
		Trim:             true,
		Validation:       validator.DefaultOptions(),
		CustomTags:       []string{},
	}
}

// Result of an extraction. PreservedElements and RemovedTags are
// de-duplicated in first-seen order.
type Result struct {
	Text              string   `json:"text" yaml:"text"`
	PreservedElements []string `json:"preservedElements" yaml:"preserved_elements"`
	RemovedTags       []string `json:"removedTags" yaml:"removed_tags"`
	ProcessedNodes    int      `json:"processedNodes" yaml:"processed_nodes"`
	ParseSuccess      bool     `json:"parseSuccess" yaml:"parse_success"`
}

func (r *Result) remove(name string) {
	if !slices.Contains(r.RemovedTags, name) {
		r.RemovedTags = append(r.RemovedTags, name)
	}
}

func (r *Result) preserve(raw string) {
	if !slices.Contains(r.PreservedElements, raw) {
		r.PreservedElements = append(r.PreservedElements, raw)
	}
	r.Text += raw
}

var (
	commentPattern     = regexp.MustCompile(`(?s)<!--.*?-->`)
	cdataPattern       = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	instructionPattern = regexp.MustCompile(`(?s)<\?.*?\?>`)

	elementNamePattern = regexp.MustCompile(`</?(\p{L}[\p{L}\p{N}:_-]*)`)
	anyTagPattern      = regexp.MustCompile(`<[^>]*>`)

	newlinePattern  = regexp.MustCompile(`\r?\n`)
	horizontalSpace = regexp.MustCompile(`[ \t\f\v]+`)
	anySpace        = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// preprocess drops comments and processing instructions and unwraps CDATA
// sections
func preprocess(text string) string {
	text = commentPattern.ReplaceAllString(text, "")
	text = cdataPattern.ReplaceAllString(text, "$1")
	return instructionPattern.ReplaceAllString(text, "")
}

// postprocess applies the whitespace options to s
func postprocess(s string, opts Options) string {
	if !opts.PreserveNewlines {
		s = newlinePattern.ReplaceAllString(s, " ")
	}
	if opts.NormalizeSpaces {
		if opts.PreserveNewlines {
			s = horizontalSpace.ReplaceAllString(s, " ")
		} else {
			s = anySpace.ReplaceAllString(s, " ")
		}
	}
	if opts.Trim {
		s = strings.TrimSpace(s)
	}
	return s
}

// elementName returns the lower-cased name of a tag, or "" when raw does not
// contain one
func elementName(raw string) string {
	m := elementNamePattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// Extractor removes recognized tags from documents. The recognized set is the
// standard vocabulary plus custom tags; it can be replaced with UpdateTags.
type Extractor struct {
	opts Options

	mu   sync.RWMutex
	tags []string
	set  map[string]struct{}
}

// New creates an Extractor whose defaults are opts
func New(opts Options) *Extractor {
	e := &Extractor{opts: opts}
	e.setTags(nil)
	return e
}

func (e *Extractor) setTags(extra []string) {
	tags := validator.Standard()
	for _, t := range slices.Concat(e.opts.CustomTags, extra) {
		t = strings.ToLower(t)
		if !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}

	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}

	e.mu.Lock()
	e.tags, e.set = tags, set
	e.mu.Unlock()
}

// UpdateTags replaces the tags added after construction with tags
func (e *Extractor) UpdateTags(tags []string) {
	e.setTags(tags)
}

// Tags returns the recognized tag names
func (e *Extractor) Tags() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.tags)
}

func (e *Extractor) recognized(name string, opts Options) bool {
	e.mu.RLock()
	_, ok := e.set[name]
	e.mu.RUnlock()
	if ok || slices.ContainsFunc(opts.CustomTags, func(t string) bool { return strings.EqualFold(t, name) }) {
		return true
	}
	if opts.Validation.Mode != validator.Strict {
		return validator.IsValidTagName(name, opts.Validation)
	}
	return false
}

// Extract runs ExtractWith using the options given to New
func (e *Extractor) Extract(text string) Result {
	return e.ExtractWith(text, e.opts)
}

// ExtractWith extracts the text of a document. When the document cannot be
// turned into a graph a regular-expression pass is used instead and
// ParseSuccess is false.
func (e *Extractor) ExtractWith(text string, opts Options) Result {
	res := Result{PreservedElements: []string{}, RemovedTags: []string{}}
	if text == "" {
		return res
	}

	g, err := dag.Parse(preprocess(text))
	if err != nil {
		return e.fallback(text, opts)
	}

	res.ParseSuccess = true
	e.walk(g, &res, opts)
	res.Text = postprocess(res.Text, opts)
	return res
}

// walk visits the graph in document order, each node at most once
func (e *Extractor) walk(g *dag.Graph, res *Result, opts Options) {
	visited := make(map[dag.NodeID]bool, g.Len())
	stack := []dag.NodeID{g.Root()}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		res.ProcessedNodes++

		n, ok := g.Node(id)
		if !ok {
			continue
		}

		descend := false
		switch d := n.Data.(type) {
		case dag.Root:
			descend = true
		case dag.Element:
			descend = true
			name := elementName(d.Raw)
			if name != "" && e.recognized(name, opts) {
				res.remove(name)
			} else {
				res.preserve(d.Raw)
			}
		case dag.Text:
			if !strings.HasPrefix(d.Value, "<") || !strings.HasSuffix(d.Value, ">") {
				res.Text += d.Value
				break
			}
			if name := elementName(d.Value); name != "" && e.recognized(name, opts) {
				res.remove(name)
			} else {
				res.preserve(d.Value)
			}
		}

		if descend {
			children := n.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// fallback strips recognized tags with a regular expression
func (e *Extractor) fallback(text string, opts Options) Result {
	res := Result{PreservedElements: []string{}, RemovedTags: []string{}}
	stripped := anyTagPattern.ReplaceAllStringFunc(preprocess(text), func(tag string) string {
		if name := elementName(tag); name != "" && e.recognized(name, opts) {
			res.remove(name)
			return ""
		}
		if !slices.Contains(res.PreservedElements, tag) {
			res.PreservedElements = append(res.PreservedElements, tag)
		}
		return tag
	})
	res.Text = postprocess(stripped, opts)
	return res
}

// DebugParse renders the graph of text for inspection
func (e *Extractor) DebugParse(text string) string {
	g, err := dag.Parse(text)
	if err != nil {
		return fmt.Sprintf("parse error: %v", err)
	}
	return g.DebugPrint()
}
