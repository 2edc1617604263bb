package integer

import (
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/numsys"
)

// Error is the class of errors returned by this package. Errors also carry
// one of the numsys error kinds.
var Error = errs.Class("integer")

// minInt64Magnitude is the magnitude of math.MinInt64.
const minInt64Magnitude = uint64(math.MaxInt64) + 1

// Block is an integer in sign and magnitude form.
type Block struct {
	Value    uint64
	Negative bool
}

// FromInt64 returns the block for v.
func FromInt64(v int64) Block {
	if v < 0 {
		// -(v+1) can't overflow, even for math.MinInt64.
		return Block{
			Value:    uint64(-(v + 1)) + 1,
			Negative: true,
		}
	}

	return Block{
		Value: uint64(v),
	}
}

// FromUint64 returns the block for v.
func FromUint64(v uint64) Block {
	return Block{
		Value: v,
	}
}

// Zero returns true if the magnitude is zero. Negative zero is zero.
func (b Block) Zero() bool {
	return b.Value == 0
}

// Int64 returns the block as a signed integer.
func (b Block) Int64() (v int64, err error) {
	switch {
	case b.Value == 0:
		return 0, nil
	case b.Negative && b.Value > minInt64Magnitude:
		return 0, numsys.Overflow.New("-%d is less than %d", b.Value, int64(math.MinInt64))
	case b.Negative:
		return -int64(b.Value-1) - 1, nil
	case b.Value > math.MaxInt64:
		return 0, numsys.Overflow.New("%d is greater than %d", b.Value, int64(math.MaxInt64))
	}

	return int64(b.Value), nil
}

// Uint64 returns the block as an unsigned integer.
func (b Block) Uint64() (v uint64, err error) {
	if b.Negative && b.Value != 0 {
		return 0, numsys.Overflow.New("-%d is negative", b.Value)
	}

	return b.Value, nil
}

func (b Block) String() string {
	s := strconv.FormatUint(b.Value, 10)
	if b.Negative && b.Value != 0 {
		return "-" + s
	}

	return s
}

// Schema for a digit string.
type Schema struct {
	System numsys.System
	Layout numsys.Layout

	// Signed selects the signed domain. Unsigned digit strings have no
	// sign and the notation is ignored.
	Signed bool
}

func (s Schema) system() numsys.System {
	if s.Signed {
		return s.System
	}

	return numsys.Unsigned(s.System.Base)
}

// Parse returns the value of text in the given system.
func Parse(text string, sys numsys.System) (v int64, err error) {
	defer Error.WrapP(&err)

	b := &Block{}

	err = NewDecoder(Schema{System: sys, Signed: true}).Decode(text, b)
	if err != nil {
		return 0, err
	}

	return b.Int64()
}

// ParseUnsigned returns the value of text in base. The text must not contain
// a sign.
func ParseUnsigned(text string, base uint) (v uint64, err error) {
	defer Error.WrapP(&err)

	b := &Block{}

	err = NewDecoder(Schema{System: numsys.Unsigned(base)}).Decode(text, b)
	if err != nil {
		return 0, err
	}

	return b.Uint64()
}

// Format returns the digit string for v in the given system and layout.
func Format(v int64, sys numsys.System, layout numsys.Layout) (text string, err error) {
	defer Error.WrapP(&err)

	b := FromInt64(v)

	return NewEncoder(Schema{System: sys, Layout: layout, Signed: true}).Encode(&b)
}

// FormatUnsigned returns the digit string for v in base and layout.
func FormatUnsigned(v uint64, base uint, layout numsys.Layout) (text string, err error) {
	defer Error.WrapP(&err)

	b := FromUint64(v)

	return NewEncoder(Schema{System: numsys.Unsigned(base), Layout: layout}).Encode(&b)
}

// Convert parses text in src and formats the value in dest.
func Convert(text string, src, dest numsys.System, layout numsys.Layout) (out string, err error) {
	v, err := Parse(text, src)
	if err != nil {
		return "", err
	}

	return Format(v, dest, layout)
}

// ConvertUnsigned parses text in base src and formats the value in base dest.
func ConvertUnsigned(text string, src, dest uint, layout numsys.Layout) (out string, err error) {
	v, err := ParseUnsigned(text, src)
	if err != nil {
		return "", err
	}

	return FormatUnsigned(v, dest, layout)
}
