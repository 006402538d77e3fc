package util

import (
	"strings"
	"unicode"
)

// IsPunctuation checks if s consists entirely of punctuation, symbols or spaces.
// The empty string counts as punctuation.
func IsPunctuation(s string) bool {
	for _, r := range s {
		if !isPunct(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// HasHan reports whether s contains at least one Han character.
func HasHan(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return unicode.Is(unicode.Han, r) }) >= 0
}

// TrimPunctuation strips punctuation, symbols and spaces from both ends of s.
func TrimPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return isPunct(r) || unicode.IsSpace(r) })
}

func isPunct(r rune) bool {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	// CJK Symbols and Punctuation
	if r >= 0x3000 && r <= 0x303F {
		return true
	}
	// Full-width forms, excluding full-width letters and digits
	if r >= 0xFF00 && r <= 0xFFEF {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return false
}
