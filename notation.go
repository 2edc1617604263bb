package numsys

import "strings"

// Notation determines how negative values are written.
type Notation uint8

// Notations. The zero value is not a notation.
const (
	NegativeSign Notation = iota + 1
	SignPlace
	OnesComplement
	TwosComplement
)

// Notations lists every valid notation.
var Notations = []Notation{
	NegativeSign,
	SignPlace,
	OnesComplement,
	TwosComplement,
}

var notationNames = [...]struct {
	token string
	name  string
}{
	NegativeSign:   {"ns", "negative-sign"},
	SignPlace:      {"sp", "sign-place"},
	OnesComplement: {"1c", "ones-complement"},
	TwosComplement: {"2c", "twos-complement"},
}

// Valid returns true if n is exactly one of the four notations.
func (n Notation) Valid() bool {
	return n >= NegativeSign && n <= TwosComplement
}

// Complement returns true for one's and two's complement.
func (n Notation) Complement() bool {
	return n == OnesComplement || n == TwosComplement
}

// Token returns the short command line token (e.g. "2c").
func (n Notation) Token() string {
	if !n.Valid() {
		return ""
	}

	return notationNames[n].token
}

func (n Notation) String() string {
	if !n.Valid() {
		return "invalid"
	}

	return notationNames[n].name
}

// ParseNotation returns the notation for a token or long name.
func ParseNotation(s string) (n Notation, err error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, n := range Notations {
		if s == notationNames[n].token || s == notationNames[n].name {
			return n, nil
		}
	}

	return 0, InvalidArgument.New("unknown notation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() (text []byte, err error) {
	if !n.Valid() {
		return nil, InvalidArgument.New("invalid notation %d", uint8(n))
	}

	return []byte(n.Token()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Notation) UnmarshalText(text []byte) (err error) {
	*n, err = ParseNotation(string(text))

	return err
}
