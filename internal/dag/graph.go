// Package dag holds the document graph built from speech markup and the
// builder that produces it from lexer tokens.
//
// Nodes live in an arena owned by the Graph and refer to each other by
// NodeID only. The edge relation is kept acyclic: every AddEdge call checks
// reachability before mutating anything.
package dag

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrParentNotFound = errors.New("parent not found")
	ErrChildNotFound  = errors.New("child not found")
	ErrCycle          = errors.New("adding this edge would create a cycle")
	ErrRootExists     = errors.New("root node already exists")
	ErrNodeNotFound   = errors.New("node not found")
)

// NodeID addresses a node inside the Graph that created it
type NodeID int

func (id NodeID) String() string {
	return fmt.Sprintf("node_%d", int(id))
}

// Kind is the node category derived from a node's Data
type Kind int

const (
	KindRoot Kind = iota
	KindElement
	KindAttribute
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindElement:
		return "element"
	case KindAttribute:
		return "attribute"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Data is the kind-specific payload of a node. The set of implementations is
// closed: Root, Element, Attribute and Text.
type Data interface {
	Kind() Kind
	isData()
}

// Root is the payload of the single root node
type Root struct{}

// Element is one tag occurrence; open, close and self-closing tags each get
// their own element node
type Element struct {
	Raw string // the full tag text, brackets included
}

// Attribute is a name/value pair hanging off an element node
type Attribute struct {
	Name  string
	Value string
}

// Text is character data, including stray closing tags kept as text
type Text struct {
	Value string
}

func (Root) Kind() Kind      { return KindRoot }
func (Element) Kind() Kind   { return KindElement }
func (Attribute) Kind() Kind { return KindAttribute }
func (Text) Kind() Kind      { return KindText }

func (Root) isData()      {}
func (Element) isData()   {}
func (Attribute) isData() {}
func (Text) isData()      {}

// Node is a vertex of the document graph
type Node struct {
	ID   NodeID
	Data Data

	children []NodeID // ordered, no duplicates
	parents  []NodeID
}

// Kind returns the node category
func (n *Node) Kind() Kind {
	return n.Data.Kind()
}

// Children returns a copy of the child ids in insertion order
func (n *Node) Children() []NodeID {
	return slices.Clone(n.children)
}

// Parents returns a copy of the parent ids
func (n *Node) Parents() []NodeID {
	return slices.Clone(n.parents)
}

// Name returns the attribute name for attribute nodes, "" otherwise
func (n *Node) Name() string {
	if a, ok := n.Data.(Attribute); ok {
		return a.Name
	}
	return ""
}

// Value returns the raw tag text, attribute value or text content
func (n *Node) Value() string {
	switch d := n.Data.(type) {
	case Element:
		return d.Raw
	case Attribute:
		return d.Value
	case Text:
		return d.Value
	default:
		return ""
	}
}

// Graph is an arena of nodes plus their parent/child adjacency
type Graph struct {
	nodes []*Node
}

// New returns a graph holding only its root node
func New() *Graph {
	g := &Graph{}
	g.nodes = append(g.nodes, &Node{ID: 0, Data: Root{}})
	return g
}

// Root returns the id of the root node
func (g *Graph) Root() NodeID {
	return 0
}

// Len returns the number of nodes, root included
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node looks up a node by id
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// Nodes returns all nodes in creation order
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// AddNode creates a node for data and returns its id. Node ids are dense and
// assigned in creation order.
func (g *Graph) AddNode(data Data) (NodeID, error) {
	if data == nil {
		return 0, errors.New("invalid node data: nil")
	}
	if data.Kind() == KindRoot {
		return 0, ErrRootExists
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{ID: id, Data: data})
	return id, nil
}

// AddEdge links parent to child. The edge is rejected, and nothing is
// changed, when parent is reachable from child. Adding an existing edge is a
// no-op.
func (g *Graph) AddEdge(parent, child NodeID) error {
	p, ok := g.Node(parent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrParentNotFound, parent)
	}
	c, ok := g.Node(child)
	if !ok {
		return fmt.Errorf("%w: %s", ErrChildNotFound, child)
	}

	if g.Reachable(child, parent) {
		return ErrCycle
	}

	if slices.Contains(p.children, child) {
		return nil
	}
	p.children = append(p.children, child)
	c.parents = append(c.parents, parent)
	return nil
}

// Reachable reports whether to can be reached from from by following child
// edges. A node is reachable from itself.
func (g *Graph) Reachable(from, to NodeID) bool {
	if from == to {
		return true
	}
	if _, ok := g.Node(from); !ok {
		return false
	}

	visited := make([]bool, len(g.nodes))
	stack := []NodeID{from}
	visited[from] = true

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range g.nodes[id].children {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Children returns the child ids of id in order
func (g *Graph) Children(id NodeID) ([]NodeID, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n.Children(), nil
}

// Parents returns the parent ids of id
func (g *Graph) Parents(id NodeID) ([]NodeID, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n.Parents(), nil
}
