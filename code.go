package texthuff

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the characters '0' and '1'
// in root-to-leaf order.
type Code string

// Len returns the number of bits in the code.
func (hc Code) Len() int {
	return len(hc)
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// IsValidBits returns true iff s consists only of '0' and '1' characters.
func IsValidBits(s string) bool {
	for i := 0; i < len(s); i++ {
		if ch := s[i]; ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}
