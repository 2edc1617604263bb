package digit_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numsys/digit"
)

func TestValue(t *testing.T) {
	for d := uint64(0); d < 36; d++ {
		c := digit.Char(d)

		v, ok := digit.Value(c)
		require.True(t, ok, "%c", c)
		require.Equal(t, d, v)

		if d >= 10 {
			v, ok = digit.Value(c + 'a' - 'A')
			require.True(t, ok, "%c", c)
			require.Equal(t, d, v)
		}
	}

	for _, c := range []byte("-_ .+/:@[`{") {
		_, ok := digit.Value(c)
		require.False(t, ok, "%c", c)
	}
}

func TestMax(t *testing.T) {
	require.Equal(t, byte('0'), digit.Max(1))
	require.Equal(t, byte('1'), digit.Max(2))
	require.Equal(t, byte('9'), digit.Max(10))
	require.Equal(t, byte('A'), digit.Max(11))
	require.Equal(t, byte('F'), digit.Max(16))
	require.Equal(t, byte('Z'), digit.Max(36))
}

func TestLocateSign(t *testing.T) {
	type TC struct {
		text string
		i    int
		ok   bool
		Mark error
	}

	tcs := []TC{
		{"-12", 0, true, oops.New("unexpected")},
		{"  -12", 2, true, oops.New("unexpected")},
		{"\t\n\v\f\r _9", 7, true, oops.New("unexpected")},
		{"", 0, false, oops.New("unexpected")},
		{" _ ", 0, false, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.text), func(t *testing.T) {
			i, ok := digit.LocateSign(tc.text)
			require.Equal(t, tc.ok, ok, tc.Mark)
			require.Equal(t, tc.i, i, tc.Mark)
		})
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, digit.Separator.Abbr, digit.Classify('_').Abbr)
	require.Equal(t, digit.Separator.Abbr, digit.Classify('\t').Abbr)
	require.Equal(t, digit.Sign.Abbr, digit.Classify('-').Abbr)
	require.Equal(t, digit.Digit.Abbr, digit.Classify('z').Abbr)
	require.Equal(t, digit.Invalid.Abbr, digit.Classify('.').Abbr)
	require.Equal(t, "d", digit.Digit.String())
}

func TestValid(t *testing.T) {
	type TC struct {
		base         uint
		negativeSign bool
		chars        string
		Mark         error
	}

	tcs := []TC{
		{1, false, "0", oops.New("unexpected")},
		{1, true, "-0", oops.New("unexpected")},
		{2, false, "01", oops.New("unexpected")},
		{10, true, "-0123456789", oops.New("unexpected")},
		{12, false, "0123456789ABab", oops.New("unexpected")},
		{16, false, "0123456789ABCDEFabcdef", oops.New("unexpected")},
		{36, true, "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.base), func(t *testing.T) {
			s := digit.Valid(tc.base, tc.negativeSign)
			require.Equal(t, tc.base, s.Base(), tc.Mark)
			require.Equal(t, tc.chars, s.String(), tc.Mark)

			for j := 0; j < len(digit.Separators); j++ {
				c := digit.Separators[j]
				require.True(t, s.Has(c), tc.Mark)
				require.Equal(t, digit.Separator.Abbr, s.Type(c).Abbr, tc.Mark)
			}

			require.Equal(t, tc.negativeSign, s.Has('-'), tc.Mark)
			if tc.base < 36 {
				require.False(t, s.Has(digit.Char(uint64(tc.base))), tc.Mark)
			}
		})
	}

	s := digit.Valid(10, false)
	require.Equal(t, -1, s.Index(" 1_000 "))
	require.Equal(t, 1, s.Index("1G"))
	require.Equal(t, 0, s.Index("-1"))
	require.Equal(t, digit.Invalid.Abbr, s.Type('A').Abbr)
	require.Equal(t, digit.Digit.Abbr, s.Type('9').Abbr)
}
