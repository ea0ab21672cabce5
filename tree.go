package texthuff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within a Tree.
type NodeID int32

// InvalidNode is the NodeID of a branch that does not exist.
const InvalidNode = NodeID(-1)

// NodeKind distinguishes the two shapes a Node can take.
type NodeKind byte

const (
	// Leaf nodes carry a symbol of the input text.
	Leaf NodeKind = iota

	// Internal nodes are synthetic merge points with exactly two children.
	Internal
)

// String returns the name of the kind.
func (kind NodeKind) String() string {
	switch kind {
	case Leaf:
		return "Leaf"
	case Internal:
		return "Internal"
	default:
		return fmt.Sprintf("NodeKind(%d)", byte(kind))
	}
}

var _ fmt.Stringer = NodeKind(0)

// Node is one node of a Tree.
//
// For a Leaf, Symbol is meaningful and Left == Right == InvalidNode.  For an
// Internal node, Symbol is meaningless and Freq is the sum of the two
// children's frequencies.
type Node struct {
	Kind   NodeKind
	Symbol Symbol
	Freq   uint64
	Left   NodeID
	Right  NodeID
}

// IsLeaf returns true iff this node is a Leaf.
func (n Node) IsLeaf() bool {
	return n.Kind == Leaf
}

// Tree is a Huffman coding tree.  Nodes live in a single arena and refer to
// their children by index, so the tree is walked with explicit stacks rather
// than recursion.
//
// A Tree is immutable once built.
type Tree struct {
	nodes    []Node
	root     NodeID
	numLeafs int
}

// BuildTree constructs the Huffman tree for the given frequency table.
//
// Ties between equal frequencies are broken by arena position: leaves are
// seeded in ascending symbol order, and merged nodes are appended in the
// order they are created.  The resulting tree is therefore the same for the
// same table on every run.
//
// If the table holds a single symbol, the tree is that one leaf.  If it holds
// none, BuildTree returns ErrEmptyInput.
//
func BuildTree(freq FrequencyTable) (*Tree, error) {
	numLeafs := freq.Len()
	if numLeafs == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{
		nodes:    make([]Node, 0, 2*numLeafs-1),
		numLeafs: numLeafs,
	}

	// Step 1: one leaf per symbol, then build a minheap over them.

	h := freqHeap{tree: t, list: make([]NodeID, 0, numLeafs)}
	for _, symbol := range freq.Symbols() {
		id := t.add(Node{
			Kind:   Leaf,
			Symbol: symbol,
			Freq:   freq[symbol],
			Left:   InvalidNode,
			Right:  InvalidNode,
		})
		h.list = append(h.list, id)
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them into a new internal
	// node, and push that back, until only the root is left.

	for h.Len() > 1 {
		left := heap.Pop(&h).(NodeID)
		right := heap.Pop(&h).(NodeID)

		id := t.add(Node{
			Kind:  Internal,
			Freq:  t.nodes[left].Freq + t.nodes[right].Freq,
			Left:  left,
			Right: right,
		})
		heap.Push(&h, id)
	}

	t.root = heap.Pop(&h).(NodeID)

	assert.Assertf(t.NumInternal() == numLeafs-1, "tree with %d leaves has %d internal nodes", numLeafs, t.NumInternal())
	assert.Assertf(t.nodes[t.root].Freq == freq.Total(), "root frequency %d != total %d", t.nodes[t.root].Freq, freq.Total())
	return t, nil
}

func (t *Tree) add(n Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Root returns the NodeID of the root.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// NumLeaves returns the number of leaves, i.e. distinct symbols.
func (t *Tree) NumLeaves() int {
	return t.numLeafs
}

// NumInternal returns the number of internal (merge) nodes.
func (t *Tree) NumInternal() int {
	return len(t.nodes) - t.numLeafs
}

// IsDegenerate returns true iff the root is itself a leaf.
func (t *Tree) IsDegenerate() bool {
	return t.nodes[t.root].IsLeaf()
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	type stackItem struct {
		id    NodeID
		depth int
	}

	var maxDepth int
	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes))))
	stack = append(stack, stackItem{t.root, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.id]
		if n.IsLeaf() {
			if top.depth > maxDepth {
				maxDepth = top.depth
			}
			continue
		}
		stack = append(stack, stackItem{n.Right, top.depth + 1}, stackItem{n.Left, top.depth + 1})
	}
	return maxDepth
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.  Nodes are listed in arena order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, n := range t.nodes {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\t%d: Leaf{%s, %d}\n", index, n.Symbol, n.Freq)
		} else {
			fmt.Fprintf(&buf, "\t%d: Internal{%d, %d, %d}\n", index, n.Freq, n.Left, n.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type freqHeap {{{

type freqHeap struct {
	tree *Tree
	list []NodeID
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].Freq, h.tree.nodes[b].Freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
