package integer

import (
	"math"
	"strings"

	"github.com/calebcase/numsys"
	"github.com/calebcase/numsys/digit"
)

// Encoder writes digit strings.
type Encoder struct {
	schema Schema
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
	}
}

// Encode returns the digit string for the block.
func (e *Encoder) Encode(b *Block) (text string, err error) {
	defer Error.WrapP(&err)

	sys := e.schema.system()
	layout := e.schema.Layout

	err = sys.Validate()
	if err != nil {
		return "", err
	}

	err = layout.Validate(sys.Base)
	if err != nil {
		return "", err
	}

	if e.schema.Signed {
		_, err = b.Int64()
	} else {
		_, err = b.Uint64()
	}
	if err != nil {
		return "", err
	}

	if sys.Base == 1 {
		return e.unary(b)
	}

	base := uint64(sys.Base)
	negative := b.Negative && !b.Zero()
	complement := negative && sys.Notation.Complement()

	signed := e.schema.Signed && !b.Zero() &&
		(sys.Notation != numsys.NegativeSign || negative)
	if signed && redundantSign(b, sys) {
		signed = false
	}

	width := Digits(b.Value, base)
	if width < layout.MinDigits {
		width = layout.MinDigits
	}

	size := width
	if layout.GroupSize > 0 {
		size += (width - 1) / layout.GroupSize
	}
	if signed {
		size++
	}

	m := b.Value
	if negative && sys.Notation == numsys.TwosComplement {
		m--
	}

	// Digits beyond the magnitude come out as zeros, which complement to
	// the maximum digit. That is the sign extension of a negative value.
	buf := make([]byte, size)
	i := len(buf)

	for place := uint(0); place < width; place++ {
		if layout.GroupSize > 0 && place > 0 && place%layout.GroupSize == 0 {
			i--
			buf[i] = layout.Sep()
		}

		dv := m % base
		m /= base

		if complement {
			dv = base - 1 - dv
		}

		i--
		buf[i] = digit.Char(dv)
	}

	if signed {
		i--

		switch {
		case sys.Notation == numsys.NegativeSign:
			buf[i] = digit.NegativeSign
		case negative:
			buf[i] = digit.Max(sys.Base)
		default:
			buf[i] = '0'
		}
	}

	return string(buf), nil
}

// unary writes the magnitude as a tally of zeros. There is no sign place in
// base 1 so only the negative sign notation can write negative values.
func (e *Encoder) unary(b *Block) (text string, err error) {
	negative := b.Negative && !b.Zero()

	if negative && e.schema.System.Notation != numsys.NegativeSign {
		return "", numsys.RangeError.New("-%d has no %s form in base 1", b.Value, e.schema.System.Notation)
	}

	if b.Value > math.MaxUint32 {
		return "", numsys.RangeError.New("%d exceeds %d unary digits", b.Value, uint64(math.MaxUint32))
	}

	tally := strings.Repeat(string(digit.Max(1)), int(b.Value))
	if negative {
		return string(digit.NegativeSign) + tally, nil
	}

	return tally, nil
}

// redundantSign returns true when the sign place of a two's complement value
// would repeat the leading digit. That happens for math.MinInt64 in the bases
// where 2^63 is a power of the base (2 and 8): the complemented magnitude
// starts with the maximum digit which already marks the value as negative.
// Under the other notations the sign place is never redundant.
func redundantSign(b *Block, sys numsys.System) bool {
	if sys.Notation != numsys.TwosComplement {
		return false
	}

	if !b.Negative || b.Value != minInt64Magnitude {
		return false
	}

	return power(b.Value, uint64(sys.Base))
}

// power returns true if v is base raised to some power.
func power(v, base uint64) bool {
	if base < 2 || v == 0 {
		return false
	}

	for v%base == 0 {
		v /= base
	}

	return v == 1
}

// Digits returns the number of digits needed to write v in base (base >= 2).
// Zero needs one digit.
func Digits(v uint64, base uint64) (n uint) {
	for {
		n++
		v /= base

		if v == 0 {
			return n
		}
	}
}
