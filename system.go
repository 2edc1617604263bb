package numsys

import (
	"fmt"

	"github.com/calebcase/numsys/digit"
)

// Bounds of the supported bases.
const (
	MinBase = 1
	MaxBase = 36
)

// MaxWidth is the largest minimum digit count or group size accepted in a
// layout. It is the bit width of the integers being converted.
const MaxWidth = 64

// System is a positional number system.
type System struct {
	Base     uint
	Notation Notation
}

// Default is base 10 with a negative sign.
var Default = System{
	Base:     10,
	Notation: NegativeSign,
}

// Unsigned returns the system used for unsigned values in the given base.
// Unsigned digit strings never carry a sign.
func Unsigned(base uint) System {
	return System{
		Base:     base,
		Notation: SignPlace,
	}
}

// Validate returns an error if the base or notation is invalid.
func (s System) Validate() error {
	if err := ValidateBase(s.Base); err != nil {
		return err
	}

	if !s.Notation.Valid() {
		return InvalidArgument.New("invalid notation %d", uint8(s.Notation))
	}

	return nil
}

func (s System) String() string {
	return fmt.Sprintf("%d/%s", s.Base, s.Notation.Token())
}

// ValidateBase returns an error if base is outside [MinBase, MaxBase].
func ValidateBase(base uint) error {
	if base < MinBase || base > MaxBase {
		return InvalidArgument.New("base %d out of range [%d, %d]", base, MinBase, MaxBase)
	}

	return nil
}

// Layout controls the shape of formatted digit strings.
type Layout struct {
	// MinDigits pads the digits (not counting the sign place) to at least
	// this many. Zero uses as many digits as the value needs.
	MinDigits uint

	// GroupSize inserts Separator between every GroupSize digits counting
	// from the least significant digit. Zero disables grouping.
	GroupSize uint

	// Separator is the grouping character. Zero means a space.
	Separator byte
}

// Sep returns the separator to insert between groups.
func (l Layout) Sep() byte {
	if l.Separator == 0 {
		return ' '
	}

	return l.Separator
}

// Validate returns an error if the layout can't be used with base.
func (l Layout) Validate(base uint) error {
	if l.MinDigits > MaxWidth {
		return InvalidArgument.New("minimum digits %d exceeds %d", l.MinDigits, MaxWidth)
	}

	if l.GroupSize > MaxWidth {
		return InvalidArgument.New("group size %d exceeds %d", l.GroupSize, MaxWidth)
	}

	// Unary digits are tallies: padding would change the value and there
	// is no place value to group by.
	if base == 1 && l.GroupSize != 0 {
		return InvalidArgument.New("group size %d with base 1", l.GroupSize)
	}

	if base == 1 && l.MinDigits != 0 {
		return InvalidArgument.New("minimum digits %d with base 1", l.MinDigits)
	}

	if l.Separator != 0 && !digit.IsSeparator(l.Separator) {
		return InvalidArgument.New("separator %q is not one of %q", l.Separator, digit.Separators)
	}

	return nil
}
