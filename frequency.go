package texthuff

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable maps each symbol of a text to its number of occurrences.
// Symbols that do not occur are absent; every present count is positive.
type FrequencyTable map[Symbol]uint64

// CountFrequencies tabulates the occurrences of every symbol in text.  An
// empty text yields an empty table, which BuildTree rejects.
func CountFrequencies(text string) FrequencyTable {
	var counts [NumSymbols]uint64
	for i := 0; i < len(text); i++ {
		counts[text[i]]++
	}

	freq := make(FrequencyTable)
	for symbol, count := range counts {
		if count != 0 {
			freq[Symbol(symbol)] = count
		}
	}
	return freq
}

// Len returns the number of distinct symbols.
func (freq FrequencyTable) Len() int {
	return len(freq)
}

// Total returns the sum of all counts, i.e. the length of the text.
func (freq FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total += count
	}
	return total
}

// Symbols returns the distinct symbols in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(freq))
	for symbol := range freq {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (freq FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range freq.Symbols() {
		fmt.Fprintf(&buf, "\t%s = %d\n", symbol, freq[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
