package numsys

import "github.com/zeebo/errs"

// Error kinds. Use Has to check which kind an error is, e.g.
// numsys.Overflow.Has(err).
var (
	// InvalidArgument is a malformed system, layout or digit string.
	InvalidArgument = errs.Class("invalid argument")

	// Overflow is a value outside of the 64 bit integer domain.
	Overflow = errs.Class("overflow")

	// RangeError is a value that can't be written in the requested system
	// or layout.
	RangeError = errs.Class("out of range")
)
