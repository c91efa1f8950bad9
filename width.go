package scriptlint

import "unicode/utf8"

// ByteWidth returns the number of bytes s takes in the Shift-JIS encoded
// script. ASCII and half-width katakana are single-byte characters, all other
// characters are double-byte.
func ByteWidth(s string) (w int) {
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// RuneWidth returns the number of bytes r takes in Shift-JIS, see [ByteWidth].
func RuneWidth(r rune) int {
	switch {
	case r < utf8.RuneSelf:
		return 1
	case r >= 0xFF61 && r <= 0xFF9F:
		return 1
	}
	return 2
}
