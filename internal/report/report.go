// Package report renders the result of a compression run for people.
package report

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/texthuff"
)

// Options controls how a Result is rendered.
type Options struct {
	// Sorted lists codes in symbol order instead of tree walk order.
	Sorted bool
}

// Write renders r to w: the code table, the original text, the encoded bits,
// the sizes and compression percentage, the decoded text and the
// verification outcome.
func Write(w io.Writer, r *texthuff.Result, opts Options) (int64, error) {
	p := message.NewPrinter(language.English) // For commas between thousands

	var buf bytes.Buffer
	table := r.Codec.Table()
	symbols := table.Symbols()
	if opts.Sorted {
		symbols = r.Frequencies.Symbols()
	}

	p.Fprintf(&buf, "Codes (%d symbols, %d .. %d bits):\n", table.Len(), table.MinSize(), table.MaxSize())
	for _, symbol := range symbols {
		hc, _ := table.Lookup(symbol)
		p.Fprintf(&buf, "\t%s\t%s\t×%d\n", symbol.String(), string(hc), r.Frequencies[symbol])
	}

	p.Fprintf(&buf, "\nOriginal text:\n%s\n", r.Text)
	p.Fprintf(&buf, "\nEncoded bits:\n%s\n", r.Encoded)
	p.Fprintf(&buf, "\nInput size: %d bits\n", r.InputBits)
	p.Fprintf(&buf, "Encoded size: %d bits\n", r.EncodedBits)
	p.Fprintf(&buf, "Compression: %.2f%%\n", r.Percent)
	p.Fprintf(&buf, "\nDecoded text:\n%s\n", r.Decoded)
	p.Fprintf(&buf, "\nMismatched symbols: %d\n", r.Mismatch)
	p.Fprintf(&buf, "Fingerprints: %s / %s\n", fingerprint(r.OriginalSum), fingerprint(r.DecodedSum))
	if r.Lossless() {
		buf.WriteString("Round trip is lossless.\n")
	} else {
		buf.WriteString("Round trip LOST data.\n")
	}
	return buf.WriteTo(w)
}

func fingerprint(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
