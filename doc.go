// Package numsys describes positional number systems: a base between 1 and 36
// and the notation used to mark negative values.
//
// Notations
//
// Four notations are supported. The examples show -12 and +8 in base 10 with
// the minimum number of digits.
//
//  | Notation         | Token | -12   | +8  |
//  |------------------|-------|-------|-----|
//  | Negative sign    | ns    | -12   | 8   |
//  | Sign place       | sp    | 912   | 08  |
//  | One's complement | 1c    | 987   | 08  |
//  | Two's complement | 2c    | 988   | 08  |
//
// Every notation other than the negative sign reserves a leading sign place.
// The sign place is 0 for non-negative values and the maximum digit of the
// base (9 above) for negative values. Complement notations also replace each
// magnitude digit d with base-1-d; two's complement then adds one.
//
// Digit strings may contain the separators "\t\n\v\f\r _" anywhere. They are
// ignored when parsing. Letters for the digits 10 through 35 are accepted in
// either case and written in upper case.
//
// The conversions themselves live in package integer. Errors returned by the
// conversions belong to one of the classes InvalidArgument, Overflow or
// RangeError.
package numsys
