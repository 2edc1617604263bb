package digit

// Type is the class of a byte in a digit string.
type Type struct {
	Abbr string

	match func(c byte) bool
}

// Match returns true if this class contains the given byte.
func (t Type) Match(c byte) bool {
	return t.match != nil && t.match(c)
}

func (t Type) String() string {
	return t.Abbr
}

type types []Type

func (ts types) Match(c byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(c) {
			return t, true
		}
	}

	return Invalid, false
}

// Character classes.
var (
	Invalid   = Type{Abbr: "x"}
	Separator = Type{Abbr: "s", match: IsSeparator}
	Sign      = Type{Abbr: "n", match: func(c byte) bool { return c == NegativeSign }}
	Digit     = Type{Abbr: "d", match: func(c byte) bool { _, ok := Value(c); return ok }}

	Types = types{
		Separator,
		Sign,
		Digit,
	}
)

// Classify returns the class of c without regard to a base.
func Classify(c byte) Type {
	t, _ := Types.Match(c)

	return t
}
