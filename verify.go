package texthuff

import (
	"github.com/cespare/xxhash/v2"
)

// Mismatch returns the number of positions at which a and b differ, counting
// every position past the end of the shorter string as a difference.  It is
// zero iff a == b.
func Mismatch(a, b string) int {
	n := len(a)
	extra := len(b) - len(a)
	if extra < 0 {
		n = len(b)
		extra = -extra
	}

	count := extra
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

// Fingerprint returns the 64-bit xxHash of s.
func Fingerprint(s string) uint64 {
	return xxhash.Sum64String(s)
}

// InputBits returns the size of text in bits, at 8 bits per symbol.
func InputBits(text string) int {
	return len(text) * 8
}

// CompressionPercent returns (1 - encodedBits/inputBits) × 100.  The result is
// negative when the encoding is larger than the input.  An empty input
// compresses by 0%.
func CompressionPercent(inputBits, encodedBits int) float64 {
	if inputBits == 0 {
		return 0
	}
	return (1 - float64(encodedBits)/float64(inputBits)) * 100
}
