package texthuff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol of a Tree to its Code.  It is derived from a
// Tree by NewCodeTable and is never built any other way.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	order   []Symbol
	minSize int
	maxSize int
}

// NewCodeTable walks the tree depth-first, left before right, appending '0'
// for each left branch and '1' for each right branch, and records the path
// at every leaf.
//
// A tree that is a single leaf has no branches at all.  Its one symbol gets
// the placeholder code "0", so that every occurrence still costs one bit and
// the decoder can count occurrences.
//
func NewCodeTable(t *Tree) *CodeTable {
	ct := &CodeTable{order: make([]Symbol, 0, t.NumLeaves())}

	if root := t.Node(t.Root()); root.IsLeaf() {
		ct.record(root.Symbol, Code("0"))
		return ct
	}

	// The stack only ever holds internal nodes, and its height is the
	// length of path.  stackItem.x tracks where we are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id NodeID
		x  byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.NumLeaves()))+1)
	path := make([]byte, 0, cap(stack))

	processChild := func(child NodeID, bit byte) {
		path = append(path, bit)
		n := t.Node(child)
		if n.IsLeaf() {
			ct.record(n.Symbol, Code(path))
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{id: child})
	}

	stack = append(stack, stackItem{id: t.Root()})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.Node(top.id).Left, '0')
		case 1:
			processChild(t.Node(top.id).Right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(len(ct.order) == t.NumLeaves(), "code table has %d codes for %d leaves", len(ct.order), t.NumLeaves())
	return ct
}

func (ct *CodeTable) record(symbol Symbol, hc Code) {
	size := hc.Len()
	if len(ct.order) == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.codes[symbol] = hc
	ct.present[symbol] = true
	ct.order = append(ct.order, symbol)
}

// Lookup returns the Code for a Symbol, and false if the symbol has none.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return len(ct.order)
}

// Symbols returns the coded symbols in the order the tree walk reached them.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a code.
func (ct *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for _, symbol := range ct.order {
		out[symbol] = byte(ct.codes[symbol].Len())
	}
	return out
}

// EncodedSize returns the sum of (frequency × code length) over the table,
// i.e. the number of bits Encode produces for a text with these frequencies.
func (ct *CodeTable) EncodedSize(freq FrequencyTable) uint64 {
	var total uint64
	for symbol, count := range freq {
		total += count * uint64(ct.codes[symbol].Len())
	}
	return total
}

// Encode concatenates the codes of every symbol of text, in order.
//
// If text contains a symbol without a code, Encode returns an error wrapping
// ErrUnknownSymbol.
//
func (ct *CodeTable) Encode(text string) (string, error) {
	var size int
	for i := 0; i < len(text); i++ {
		symbol := Symbol(text[i])
		if !ct.present[symbol] {
			return "", fmt.Errorf("%w: %s at offset %d", ErrUnknownSymbol, symbol, i)
		}
		size += ct.codes[symbol].Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < len(text); i++ {
		sb.WriteString(string(ct.codes[text[i]]))
	}
	return sb.String(), nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
