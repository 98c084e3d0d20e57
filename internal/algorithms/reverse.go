package algorithms

import "unicode/utf8"

// ReverseRecursive returns s with its runes in reverse order, computed as
// reverse(s[1:]) + s[0].
func ReverseRecursive(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return ReverseRecursive(s[size:]) + string(r)
}

// ReverseIterative returns s with its runes in reverse order by prepending
// each rune while scanning forward.
func ReverseIterative(s string) string {
	result := ""
	for _, r := range s {
		result = string(r) + result
	}
	return result
}

// Letters builds a deterministic lowercase string of n runes: a, b, ..., z, a, ...
func Letters(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('a' + i%26)
	}
	return string(buf)
}
