package digit

import "strings"

// Separators are ignored anywhere in a digit string.
const Separators = "\t\n\v\f\r _"

// NegativeSign marks a negative value in the negative sign notation.
const NegativeSign = '-'

const chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IsSeparator returns true if c is one of Separators.
func IsSeparator(c byte) bool {
	return strings.IndexByte(Separators, c) >= 0
}

// Value returns the value of the digit c. Letters are case-insensitive.
func Value(c byte) (d uint64, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	}

	return 0, false
}

// Char returns the upper case character of the digit d. It panics if d is
// not less than 36.
func Char(d uint64) byte {
	return chars[d]
}

// Max returns the character of the largest digit in base. The maximum digit
// of base 1 is 0.
func Max(base uint) byte {
	if base <= 10 {
		return byte('0' + base - 1)
	}

	return byte('A' + base - 11)
}

// LocateSign returns the index of the first byte of text that isn't a
// separator. It returns false if there is no such byte.
func LocateSign(text string) (i int, ok bool) {
	for i = 0; i < len(text); i++ {
		if !IsSeparator(text[i]) {
			return i, true
		}
	}

	return 0, false
}
