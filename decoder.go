package texthuff

import (
	"fmt"
	"strings"
)

// Decode reconstructs a text from the bits produced by encoding it with this
// tree's CodeTable.
//
// The decoder keeps a cursor, starting at the root.  Whenever the cursor is
// on a leaf, its symbol is emitted and the cursor returns to the root;
// otherwise the next bit moves the cursor to the left ('0') or right ('1')
// child.  Decoding succeeds only if the bits run out exactly when the cursor
// is back at the root.
//
// Errors wrap one of ErrTruncatedStream, ErrOutOfBounds or ErrInvalidBit,
// along with the offset of the offending bit.
//
func (t *Tree) Decode(bits string) (string, error) {
	if t.IsDegenerate() {
		return t.decodeSingleLeaf(bits)
	}

	var sb strings.Builder
	cursor := t.root
	codeStart := 0
	index := 0
	for {
		n := t.nodes[cursor]
		if n.IsLeaf() {
			sb.WriteByte(byte(n.Symbol))
			cursor = t.root
			codeStart = index
			continue
		}

		if index >= len(bits) {
			break
		}

		switch ch := bits[index]; ch {
		case '0':
			cursor = n.Left
		case '1':
			cursor = n.Right
		default:
			return "", fmt.Errorf("%w %q at offset %d", ErrInvalidBit, ch, index)
		}
		index++
	}

	if cursor != t.root {
		return "", fmt.Errorf("%w: code starting at offset %d has no leaf after %d bits", ErrTruncatedStream, codeStart, len(bits)-codeStart)
	}
	return sb.String(), nil
}

// decodeSingleLeaf handles a tree whose root is a leaf.  There is nothing to
// descend into: every placeholder bit is one occurrence of the symbol.
func (t *Tree) decodeSingleLeaf(bits string) (string, error) {
	symbol := byte(t.nodes[t.root].Symbol)
	out := make([]byte, len(bits))
	for index := 0; index < len(bits); index++ {
		switch ch := bits[index]; ch {
		case '0':
			out[index] = symbol
		case '1':
			return "", fmt.Errorf("%w: single-leaf tree has no right branch, bit at offset %d", ErrOutOfBounds, index)
		default:
			return "", fmt.Errorf("%w %q at offset %d", ErrInvalidBit, ch, index)
		}
	}
	return string(out), nil
}
