package main

import (
	"strconv"
	"strings"

	"github.com/calebcase/numsys"
	"github.com/calebcase/numsys/internal/config"
)

// isDecimal returns true if s is made only of ASCII digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// setSystem sets the base or notation of sys from token and returns the name
// of the field it set.
func setSystem(sys *numsys.System, token string) (field string, err error) {
	if isDecimal(token) {
		base, err := strconv.ParseUint(token, 10, 0)
		if err != nil {
			return "", numsys.InvalidArgument.New("invalid base %q", token)
		}

		sys.Base = uint(base)

		return "base", nil
	}

	n, err := numsys.ParseNotation(token)
	if err != nil {
		return "", err
	}

	sys.Notation = n

	return "notation", nil
}

// applyConversions sets the source and destination systems of c from
// SRC=DEST arguments.
func applyConversions(args []string, c *config.Config) error {
	// field -> argument that set it
	seen := map[string]string{}

	for _, arg := range args {
		left, right, ok := strings.Cut(arg, "=")
		if !ok || strings.Contains(right, "=") {
			return numsys.InvalidArgument.New("invalid conversion argument %q", arg)
		}

		if left == "" && right == "" {
			return numsys.InvalidArgument.New("missing conversion argument")
		}

		sides := []struct {
			name  string
			token string
			sys   *numsys.System
		}{
			{"source", left, &c.Source},
			{"destination", right, &c.Dest},
		}

		for _, side := range sides {
			if side.token == "" {
				continue
			}

			field, err := setSystem(side.sys, side.token)
			if err != nil {
				return err
			}

			key := side.name + " " + field
			if prev, ok := seen[key]; ok {
				return numsys.InvalidArgument.New("%s set by both %q and %q", key, prev, arg)
			}

			seen[key] = arg
		}
	}

	return nil
}
