package utils

import "unicode"

// IsWordSeparator checks if a rune joins word parts rather than breaking them
func IsWordSeparator(r rune) bool {
	return r == '-' || r == '\'' || r == '.'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains characters that cannot
// appear in a dictionary entry (non-letters excluding digits and the common
// in-word separators)
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsWordSeparator(r) {
			return true
		}
	}
	return false
}

// IsValidWord checks if input should be looked up at all.
// Returns false for empty strings, bare numbers and anything carrying
// symbols a dictionary never holds, so obvious junk is rejected before it
// reaches the compiled sets.
func IsValidWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	return true
}
