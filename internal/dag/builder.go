package dag

import (
	"fmt"

	"github.com/Jabelic-Works/ssml-utilities/internal/lexer"
	"github.com/Jabelic-Works/ssml-utilities/internal/tag"
)

// frame is an element that is still waiting for its closing tag
type frame struct {
	id   NodeID
	name string
}

// builder tracks the stack of open elements while tokens are consumed
type builder struct {
	g     *Graph
	stack []frame
}

// Parse tokenizes text and builds its document graph
func Parse(text string) (*Graph, error) {
	return Build(lexer.Tokenize(text))
}

// Build turns a token sequence into a document graph.
//
// Closing tags are matched against the innermost open element with the same
// name; the stack is then unwound past that element. A closing tag with no
// open counterpart becomes a text node.
func Build(tokens []lexer.Token) (*Graph, error) {
	b := &builder{g: New()}
	b.stack = []frame{{id: b.g.Root()}}

	for _, tok := range tokens {
		var err error
		switch tok.Kind {
		case lexer.OpenTag:
			err = b.openTag(tok.Raw)
		case lexer.SelfClosingTag:
			err = b.selfClosingTag(tok.Raw)
		case lexer.CloseTag:
			err = b.closeTag(tok.Raw)
		case lexer.Text:
			err = b.text(tok.Raw)
		default:
			err = fmt.Errorf("invalid token kind: %s", tok.Kind)
		}
		if err != nil {
			return nil, err
		}
	}

	return b.g, nil
}

func (b *builder) top() NodeID {
	return b.stack[len(b.stack)-1].id
}

// element creates an element node for raw under the current top, together
// with its attribute nodes
func (b *builder) element(raw, step string) (NodeID, error) {
	id, err := b.g.AddNode(Element{Raw: raw})
	if err != nil {
		return 0, fmt.Errorf("failed to create %s node: %w", step, err)
	}
	if err := b.g.AddEdge(b.top(), id); err != nil {
		return 0, fmt.Errorf("failed to add %s edge: %w", step, err)
	}

	structure, _ := tag.ParseStructure(raw)
	for _, attr := range structure.Attributes {
		attrID, err := b.g.AddNode(Attribute{Name: attr.Name, Value: attr.Value})
		if err != nil {
			return 0, fmt.Errorf("failed to create attribute node: %w", err)
		}
		if err := b.g.AddEdge(id, attrID); err != nil {
			return 0, fmt.Errorf("failed to add attribute edge: %w", err)
		}
	}
	return id, nil
}

func (b *builder) openTag(raw string) error {
	id, err := b.element(raw, "element")
	if err != nil {
		return err
	}
	name, _ := tag.ExtractTagName(raw)
	b.stack = append(b.stack, frame{id: id, name: name})
	return nil
}

func (b *builder) selfClosingTag(raw string) error {
	_, err := b.element(raw, "self-closing")
	return err
}

func (b *builder) closeTag(raw string) error {
	name, ok := tag.ExtractTagName(raw)
	match := -1
	if ok {
		// frame 0 is the root and never matches
		for i := len(b.stack) - 1; i > 0; i-- {
			if b.stack[i].name == name {
				match = i
				break
			}
		}
	}
	if match < 0 {
		return b.text(raw)
	}

	id, err := b.g.AddNode(Element{Raw: raw})
	if err != nil {
		return fmt.Errorf("failed to create close tag node: %w", err)
	}
	if err := b.g.AddEdge(b.top(), id); err != nil {
		return fmt.Errorf("failed to add close tag edge: %w", err)
	}
	b.stack = b.stack[:match]
	return nil
}

func (b *builder) text(value string) error {
	id, err := b.g.AddNode(Text{Value: value})
	if err != nil {
		return fmt.Errorf("failed to create text node: %w", err)
	}
	if err := b.g.AddEdge(b.top(), id); err != nil {
		return fmt.Errorf("failed to add text edge: %w", err)
	}
	return nil
}
