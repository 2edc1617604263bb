package integer

import (
	"math/bits"
	"strings"

	"github.com/calebcase/numsys"
	"github.com/calebcase/numsys/digit"
)

// Decoder parses digit strings.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode parses text into the block.
func (d *Decoder) Decode(text string, b *Block) (err error) {
	defer Error.WrapP(&err)

	sys := d.schema.system()

	err = sys.Validate()
	if err != nil {
		return err
	}

	if text == "" {
		return numsys.InvalidArgument.New("empty digit string")
	}

	negativeSign := d.schema.Signed && sys.Notation == numsys.NegativeSign

	valid := digit.Valid(sys.Base, negativeSign)
	if i := valid.Index(text); i >= 0 {
		return numsys.InvalidArgument.New("invalid character %q at offset %d for base %d", text[i], i, sys.Base)
	}

	pos, ok := digit.LocateSign(text)
	if !ok {
		return numsys.InvalidArgument.New("no digits in %q", text)
	}

	// The magnitude digits start after the sign (if any).
	start := pos
	negative := false

	if d.schema.Signed {
		switch {
		case sys.Notation == numsys.NegativeSign:
			if text[pos] == digit.NegativeSign {
				negative = true
				start = pos + 1
			}
		case sys.Base > 1:
			negative = text[pos] != '0'
			start = pos + 1
		}
	}

	if i := strings.IndexByte(text[start:], digit.NegativeSign); i >= 0 {
		return numsys.InvalidArgument.New("misplaced negative sign at offset %d", start+i)
	}

	if negative && sys.Notation == numsys.NegativeSign {
		if _, ok := digit.LocateSign(text[start:]); !ok {
			return numsys.InvalidArgument.New("negative sign without digits")
		}
	}

	var value uint64

	if sys.Base == 1 {
		value = tally(text[start:])
	} else {
		complement := negative && sys.Notation.Complement()

		value, err = accumulate(text[start:], uint64(sys.Base), complement)
		if err != nil {
			return err
		}

		if negative && sys.Notation == numsys.TwosComplement {
			var carry uint64

			value, carry = bits.Add64(value, 1, 0)
			if carry != 0 {
				return numsys.Overflow.New("%q exceeds 64 bits", text)
			}
		}
	}

	b.Value = value
	b.Negative = negative

	return nil
}

// tally counts the unary digits in text.
func tally(text string) (n uint64) {
	for i := 0; i < len(text); i++ {
		if !digit.IsSeparator(text[i]) {
			n++
		}
	}

	return n
}

// accumulate returns the magnitude of the digits in text. Separators are
// skipped and each digit has already been checked against base. With
// complement set each digit d is read as base-1-d.
func accumulate(text string, base uint64, complement bool) (value uint64, err error) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if digit.IsSeparator(c) {
			continue
		}

		dv, _ := digit.Value(c)
		if complement {
			dv = base - 1 - dv
		}

		hi, lo := bits.Mul64(value, base)
		if hi != 0 {
			return 0, numsys.Overflow.New("%q exceeds 64 bits", text)
		}

		var carry uint64

		value, carry = bits.Add64(lo, dv, 0)
		if carry != 0 {
			return 0, numsys.Overflow.New("%q exceeds 64 bits", text)
		}
	}

	return value, nil
}
