package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphHasRoot(t *testing.T) {
	g := New()
	require.Equal(t, 1, g.Len())

	root, ok := g.Node(g.Root())
	require.True(t, ok)
	assert.Equal(t, KindRoot, root.Kind())
	assert.Empty(t, root.Children())
	assert.Empty(t, root.Parents())
}

func TestAddNodeRejectsSecondRoot(t *testing.T) {
	g := New()
	_, err := g.AddNode(Root{})
	assert.ErrorIs(t, err, ErrRootExists)
	assert.Equal(t, 1, g.Len())
}

func TestAddNodeAssignsDenseIDs(t *testing.T) {
	g := New()
	a, err := g.AddNode(Text{Value: "a"})
	require.NoError(t, err)
	b, err := g.AddNode(Element{Raw: "<b>"})
	require.NoError(t, err)

	assert.Equal(t, NodeID(1), a)
	assert.Equal(t, NodeID(2), b)
	assert.Equal(t, "node_2", b.String())
}

func TestAddEdge(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Element{Raw: "<a>"})
	b, _ := g.AddNode(Element{Raw: "<b>"})

	require.NoError(t, g.AddEdge(a, b))

	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	assert.Equal(t, []NodeID{b}, na.Children())
	assert.Equal(t, []NodeID{a}, nb.Parents())

	// re-adding is a no-op
	require.NoError(t, g.AddEdge(a, b))
	assert.Len(t, na.Children(), 1)
	assert.Len(t, nb.Parents(), 1)
}

func TestAddEdgeMissingNodes(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Text{Value: "a"})

	assert.ErrorIs(t, g.AddEdge(NodeID(99), a), ErrParentNotFound)
	assert.ErrorIs(t, g.AddEdge(a, NodeID(99)), ErrChildNotFound)
	assert.ErrorIs(t, g.AddEdge(NodeID(-1), a), ErrParentNotFound)
}

func TestAddEdgeRejectsCycle(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Element{Raw: "<a>"})
	b, _ := g.AddNode(Element{Raw: "<b>"})
	require.NoError(t, g.AddEdge(a, b))

	err := g.AddEdge(b, a)
	require.ErrorIs(t, err, ErrCycle)

	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	assert.NotContains(t, nb.Children(), a)
	assert.NotContains(t, na.Parents(), b)
	assert.Equal(t, []NodeID{b}, na.Children())
	assert.Equal(t, []NodeID{a}, nb.Parents())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Element{Raw: "<a>"})
	assert.ErrorIs(t, g.AddEdge(a, a), ErrCycle)
}

func TestAddEdgeRejectsLongCycle(t *testing.T) {
	g := New()
	prev := g.Root()
	var ids []NodeID
	for i := 0; i < 50; i++ {
		id, err := g.AddNode(Element{Raw: "<p>"})
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(prev, id))
		ids = append(ids, id)
		prev = id
	}

	assert.ErrorIs(t, g.AddEdge(ids[49], g.Root()), ErrCycle)
	assert.ErrorIs(t, g.AddEdge(ids[30], ids[10]), ErrCycle)
	// shortcuts downwards keep the graph acyclic
	assert.NoError(t, g.AddEdge(ids[10], ids[30]))
}

func TestReachable(t *testing.T) {
	g := New()
	a, _ := g.AddNode(Element{Raw: "<a>"})
	b, _ := g.AddNode(Element{Raw: "<b>"})
	c, _ := g.AddNode(Text{Value: "c"})
	require.NoError(t, g.AddEdge(g.Root(), a))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	assert.True(t, g.Reachable(g.Root(), c))
	assert.True(t, g.Reachable(b, b))
	assert.False(t, g.Reachable(c, a))
	assert.False(t, g.Reachable(NodeID(42), a))
}

func TestReachableDeepChain(t *testing.T) {
	g := New()
	prev := g.Root()
	for i := 0; i < 100000; i++ {
		id, _ := g.AddNode(Text{Value: "x"})
		g.nodes[prev].children = append(g.nodes[prev].children, id)
		g.nodes[id].parents = append(g.nodes[id].parents, prev)
		prev = id
	}
	assert.True(t, g.Reachable(g.Root(), prev))
}

func TestNodeAccessors(t *testing.T) {
	g := New()
	attr, _ := g.AddNode(Attribute{Name: "time", Value: "1s"})
	el, _ := g.AddNode(Element{Raw: "<break/>"})
	txt, _ := g.AddNode(Text{Value: "hi"})

	n, _ := g.Node(attr)
	assert.Equal(t, KindAttribute, n.Kind())
	assert.Equal(t, "time", n.Name())
	assert.Equal(t, "1s", n.Value())

	n, _ = g.Node(el)
	assert.Equal(t, "", n.Name())
	assert.Equal(t, "<break/>", n.Value())

	n, _ = g.Node(txt)
	assert.Equal(t, "hi", n.Value())

	_, err := g.Children(NodeID(77))
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestDebugPrint(t *testing.T) {
	g, err := Parse(`<speak lang="ja">hi</speak>`)
	require.NoError(t, err)

	out := g.DebugPrint()
	assert.Contains(t, out, "Node node_0:\n  Type: root\n")
	assert.Contains(t, out, "  Name: lang\n  Value: ja\n")
	assert.Contains(t, out, "  Children: node_1\n")
}
