package cipher

import "unicode"

// IsLetter reports whether r belongs to the cipher alphabet (ASCII A-Z, a-z).
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// CharToNum maps a letter to its alphabet position, ignoring case:
// A and a map to 0, Z and z map to 25. Callers must check IsLetter first.
func CharToNum(r rune) int {
	return int(unicode.ToUpper(r) - 'A')
}

// NumToChar maps a position in [0, 26) back to an uppercase letter.
func NumToChar(n int) rune {
	return rune('A' + n)
}

// matchCase lowercases out when the original letter was lowercase.
func matchCase(original, out rune) rune {
	if unicode.IsLower(original) {
		return unicode.ToLower(out)
	}
	return out
}
