package dag

import (
	"fmt"
	"strings"
)

// DebugPrint renders every node with its kind, payload and adjacency, in
// creation order
func (g *Graph) DebugPrint() string {
	var b strings.Builder
	for _, n := range g.nodes {
		fmt.Fprintf(&b, "Node %s:\n", n.ID)
		fmt.Fprintf(&b, "  Type: %s\n", n.Kind())
		if name := n.Name(); name != "" {
			fmt.Fprintf(&b, "  Name: %s\n", name)
		}
		if value := n.Value(); value != "" {
			fmt.Fprintf(&b, "  Value: %s\n", value)
		}
		fmt.Fprintf(&b, "  Parents: %s\n", joinIDs(n.parents))
		fmt.Fprintf(&b, "  Children: %s\n\n", joinIDs(n.children))
	}
	return b.String()
}

func joinIDs(ids []NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
