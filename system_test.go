package numsys_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numsys"
)

func TestNotation(t *testing.T) {
	type TC struct {
		input    string
		notation numsys.Notation
		Mark     error
	}

	tcs := []TC{
		{"ns", numsys.NegativeSign, oops.New("unexpected")},
		{"sp", numsys.SignPlace, oops.New("unexpected")},
		{"1c", numsys.OnesComplement, oops.New("unexpected")},
		{"2c", numsys.TwosComplement, oops.New("unexpected")},
		{"2C", numsys.TwosComplement, oops.New("unexpected")},
		{" negative-sign ", numsys.NegativeSign, oops.New("unexpected")},
		{"ones-complement", numsys.OnesComplement, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			n, err := numsys.ParseNotation(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.notation, n, tc.Mark)

			text, err := n.MarshalText()
			require.NoError(t, err, tc.Mark)

			var back numsys.Notation
			require.NoError(t, back.UnmarshalText(text), tc.Mark)
			require.Equal(t, n, back, tc.Mark)
		})
	}

	for _, input := range []string{"", "3c", "neg", "-"} {
		_, err := numsys.ParseNotation(input)
		require.Error(t, err, input)
		require.True(t, numsys.InvalidArgument.Has(err), input)
	}

	require.False(t, numsys.Notation(0).Valid())
	require.False(t, numsys.Notation(5).Valid())
	require.Equal(t, "invalid", numsys.Notation(0).String())
	require.Equal(t, "", numsys.Notation(0).Token())

	_, err := numsys.Notation(0).MarshalText()
	require.True(t, numsys.InvalidArgument.Has(err))

	require.True(t, numsys.OnesComplement.Complement())
	require.True(t, numsys.TwosComplement.Complement())
	require.False(t, numsys.SignPlace.Complement())
	require.False(t, numsys.NegativeSign.Complement())
}

func TestSystemValidate(t *testing.T) {
	for base := uint(numsys.MinBase); base <= numsys.MaxBase; base++ {
		for _, n := range numsys.Notations {
			require.NoError(t, numsys.System{Base: base, Notation: n}.Validate())
		}
	}

	for _, sys := range []numsys.System{
		{Base: 0, Notation: numsys.NegativeSign},
		{Base: 37, Notation: numsys.NegativeSign},
		{Base: 10},
		{Base: 10, Notation: 5},
	} {
		err := sys.Validate()
		require.Error(t, err, sys)
		require.True(t, numsys.InvalidArgument.Has(err), sys)
	}

	require.Equal(t, "16/2c", numsys.System{Base: 16, Notation: numsys.TwosComplement}.String())
	require.Equal(t, numsys.System{Base: 10, Notation: numsys.NegativeSign}, numsys.Default)
	require.NoError(t, numsys.Unsigned(36).Validate())
}

func TestLayoutValidate(t *testing.T) {
	type TC struct {
		layout numsys.Layout
		base   uint
		valid  bool
		Mark   error
	}

	tcs := []TC{
		{numsys.Layout{}, 1, true, oops.New("unexpected")},
		{numsys.Layout{}, 10, true, oops.New("unexpected")},
		{numsys.Layout{MinDigits: 64, GroupSize: 64}, 2, true, oops.New("unexpected")},
		{numsys.Layout{GroupSize: 3, Separator: '_'}, 10, true, oops.New("unexpected")},
		{numsys.Layout{GroupSize: 3, Separator: '\t'}, 10, true, oops.New("unexpected")},
		{numsys.Layout{MinDigits: 65}, 2, false, oops.New("unexpected")},
		{numsys.Layout{GroupSize: 65}, 2, false, oops.New("unexpected")},
		{numsys.Layout{GroupSize: 1}, 1, false, oops.New("unexpected")},
		{numsys.Layout{MinDigits: 1}, 1, false, oops.New("unexpected")},
		{numsys.Layout{Separator: ','}, 10, false, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			err := tc.layout.Validate(tc.base)
			if tc.valid {
				require.NoError(t, err, tc.Mark)
				return
			}

			require.Error(t, err, tc.Mark)
			require.True(t, numsys.InvalidArgument.Has(err), tc.Mark)
		})
	}

	require.Equal(t, byte(' '), numsys.Layout{}.Sep())
	require.Equal(t, byte('_'), numsys.Layout{Separator: '_'}.Sep())
}
