package texthuff

import (
	"fmt"
)

// Codec pairs a Tree with the CodeTable derived from it.
type Codec struct {
	tree  *Tree
	table *CodeTable
}

// NewCodec builds the tree and code table for the given frequencies.
func NewCodec(freq FrequencyTable) (*Codec, error) {
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return &Codec{tree: tree, table: NewCodeTable(tree)}, nil
}

// NewCodecForText is shorthand for NewCodec(CountFrequencies(text)).
func NewCodecForText(text string) (*Codec, error) {
	return NewCodec(CountFrequencies(text))
}

// Tree returns the coding tree.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Table returns the code table.
func (c *Codec) Table() *CodeTable {
	return c.table
}

// Encode encodes text with the code table.
func (c *Codec) Encode(text string) (string, error) {
	return c.table.Encode(text)
}

// Decode decodes bits by walking the tree.
func (c *Codec) Decode(bits string) (string, error) {
	return c.tree.Decode(bits)
}

// Result holds everything one compression run produced.
type Result struct {
	Text        string
	Frequencies FrequencyTable
	Codec       *Codec
	Encoded     string
	Decoded     string
	InputBits   int
	EncodedBits int
	Percent     float64
	Mismatch    int
	OriginalSum uint64
	DecodedSum  uint64
}

// Lossless returns true iff the decoded text is identical to the original.
func (r *Result) Lossless() bool {
	return r.Mismatch == 0
}

// Compress runs the full pipeline on text: count, build, encode, decode and
// verify.  Any failure aborts the run.
func Compress(text string) (*Result, error) {
	freq := CountFrequencies(text)
	codec, err := NewCodec(freq)
	if err != nil {
		return nil, err
	}
	return compress(codec, freq, text)
}

// CompressWith is like Compress, but reuses a Codec built earlier.  The
// codec must cover every symbol of text.
func CompressWith(codec *Codec, text string) (*Result, error) {
	return compress(codec, CountFrequencies(text), text)
}

func compress(codec *Codec, freq FrequencyTable, text string) (*Result, error) {
	encoded, err := codec.Encode(text)
	if err != nil {
		return nil, err
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding %d bits: %w", len(encoded), err)
	}

	inputBits := InputBits(text)
	return &Result{
		Text:        text,
		Frequencies: freq,
		Codec:       codec,
		Encoded:     encoded,
		Decoded:     decoded,
		InputBits:   inputBits,
		EncodedBits: len(encoded),
		Percent:     CompressionPercent(inputBits, len(encoded)),
		Mismatch:    Mismatch(text, decoded),
		OriginalSum: Fingerprint(text),
		DecodedSum:  Fingerprint(decoded),
	}, nil
}
