// Package texthuff builds Huffman codes for the bytes of a text, encodes the
// text into a string of '0' and '1' digits, and decodes that string back by
// walking the same tree one bit at a time.
//
// The pipeline is:
//
//     CountFrequencies -> BuildTree -> NewCodeTable -> Encode -> Decode -> Mismatch
//
// Compress runs all of it for one text.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package texthuff
