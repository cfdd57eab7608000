package util

import "unicode/utf8"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += RuneUTF16Len(r)
	}
	return count
}

// RuneUTF16Len returns how many UTF-16 code units r occupies.
// Invalid bytes decode to utf8.RuneError and count as one unit.
func RuneUTF16Len(r rune) int {
	if r > 0xFFFF && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
