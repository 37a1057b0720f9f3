// Package letters implements the alphabetic sequence used to label barcode
// sets (A, B, C…) and the barcodes inside them (a, b, c…).
//
// The sequence is not a base-26 counter. Only the last character is ever
// inspected: a trailing 'z' or 'Z' is kept and a fresh 'a' or 'A' is appended,
// so "z" is followed by "za", then "zb", and earlier characters never carry.
package letters

// First letters used when a form or set has no entries yet.
const (
	FirstSet     = "A"
	FirstBarcode = "a"
)

// Next returns the label that follows s. An empty input yields an empty
// result.
func Next(s string) string {
	if s == "" {
		return ""
	}

	last := s[len(s)-1]
	switch last {
	case 'z':
		return s + "a"
	case 'Z':
		return s + "A"
	default:
		return s[:len(s)-1] + string(rune(last)+1)
	}
}

// Valid reports whether s is a non-empty run of ASCII letters, the only
// labels Next can extend.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Ordinal reports the display number of a set letter, derived from the first
// character only ("A" is 1, "B" is 2, "ZA" is 26).
func Ordinal(s string) int {
	if s == "" {
		return 0
	}
	return int(s[0]) - 64
}

// Less orders labels the way Next produces them: shorter labels first, then
// byte order among labels of equal length.
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
