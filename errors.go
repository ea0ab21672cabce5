package texthuff

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there are no symbols to build a tree
	// from.
	ErrEmptyInput = errors.New("texthuff: empty input")

	// ErrUnknownSymbol is returned by Encode when the text contains a symbol
	// that has no code.  Using a table derived from the same text never
	// triggers it.
	ErrUnknownSymbol = errors.New("texthuff: symbol has no code")

	// ErrTruncatedStream is returned by Decode when the bits run out in the
	// middle of a code.
	ErrTruncatedStream = errors.New("texthuff: truncated bit stream")

	// ErrOutOfBounds is returned by Decode when a bit selects a branch that
	// the tree does not have.
	ErrOutOfBounds = errors.New("texthuff: bit selects a missing branch")

	// ErrInvalidBit is returned by Decode for any digit other than '0' or
	// '1'.
	ErrInvalidBit = errors.New("texthuff: invalid bit")
)
