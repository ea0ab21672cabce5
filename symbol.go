package texthuff

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Symbol represents one code unit (one byte) of the input text.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// String returns a quoted representation of the symbol.  Bytes outside the
// ASCII range are shown as hex escapes, since on their own they are not
// characters.
func (s Symbol) String() string {
	if s < utf8.RuneSelf {
		return strconv.QuoteRune(rune(s))
	}
	return fmt.Sprintf("'\\x%02x'", byte(s))
}

var _ fmt.Stringer = Symbol(0)
