package digit

import "strings"

// Set is the set of bytes legal in a digit string of a particular base.
type Set struct {
	base  uint
	types [256]Type
}

// Valid returns the set of bytes legal in a digit string of base. The negative
// sign is only legal if negativeSign is true.
func Valid(base uint, negativeSign bool) *Set {
	s := &Set{
		base: base,
	}

	for i := range s.types {
		c := byte(i)

		switch t := Classify(c); t.Abbr {
		case Separator.Abbr:
			s.types[i] = Separator
		case Sign.Abbr:
			if negativeSign {
				s.types[i] = Sign
			} else {
				s.types[i] = Invalid
			}
		case Digit.Abbr:
			if d, _ := Value(c); d < uint64(base) {
				s.types[i] = Digit
			} else {
				s.types[i] = Invalid
			}
		default:
			s.types[i] = Invalid
		}
	}

	return s
}

// Base returns the base the set was built for.
func (s *Set) Base() uint {
	return s.base
}

// Has returns true if c is legal.
func (s *Set) Has(c byte) bool {
	return s.types[c].Abbr != Invalid.Abbr
}

// Type returns the class of c. Bytes that aren't legal are Invalid.
func (s *Set) Type(c byte) Type {
	return s.types[c]
}

// Index returns the index of the first byte in text that isn't legal or -1.
func (s *Set) Index(text string) int {
	for i := 0; i < len(text); i++ {
		if !s.Has(text[i]) {
			return i
		}
	}

	return -1
}

// String lists the legal non-separator bytes (e.g. "-0123456789").
func (s *Set) String() string {
	sb := &strings.Builder{}

	for i, t := range s.types {
		if t.Abbr == Sign.Abbr || t.Abbr == Digit.Abbr {
			sb.WriteByte(byte(i))
		}
	}

	return sb.String()
}
