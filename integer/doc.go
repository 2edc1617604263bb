// Package integer converts 64 bit integers to and from digit strings.
//
// Values pass through a Block, a sign and magnitude pair that covers both the
// signed and the unsigned domain. A Decoder turns a digit string into a Block
// and an Encoder turns a Block into a digit string, both according to a
// Schema. Parse, Format and Convert wrap them for int64 values and the
// Unsigned variants for uint64 values.
//
// Parsing
//
// The first byte that isn't a separator is the sign position. In the negative
// sign notation a '-' there makes the value negative. In the other notations
// that byte is the sign place: any digit other than 0 makes the value
// negative and the sign place is not part of the magnitude. The magnitude of
// a negative complement value is read digit by digit as base-1-d, plus one for
// two's complement.
//
//  | Text  | Base | Notation | Value |
//  |-------|------|----------|-------|
//  | -12   | 10   | ns       | -12   |
//  | 912   | 10   | sp       | -12   |
//  | 112   | 10   | sp       | -12   |
//  | 987   | 10   | 1c       | -12   |
//  | 988   | 10   | 2c       | -12   |
//  | 9     | 10   | 2c       | -1    |
//  | 0FF   | 16   | sp       | 255   |
//  | 00000 | 1    | ns       | 5     |
//
// Formatting
//
// Digits are written from the least significant end. MinDigits pads with 0
// (or the maximum digit for negative complement values) and GroupSize
// inserts a separator every GroupSize digits. The sign place is written for
// every notation except the negative sign, which only writes '-' for negative
// values. Zero never has a sign place.
//
//  | Value | Base | Notation | MinDigits | GroupSize | Text      |
//  |-------|------|----------|-----------|-----------|-----------|
//  | -12   | 10   | 2c       | 0         | 0         | 988       |
//  | -12   | 10   | 2c       | 4         | 0         | 99988     |
//  | 65535 | 16   | sp       | 0         | 2         | 0FF FF    |
//  | 5     | 1    | ns       | 0         | 0         | 00000     |
//
// Base 1 is a tally: the magnitude is written as that many zeros. There is no
// sign place in base 1, so negative values can only be written with the
// negative sign notation, and at most math.MaxUint32 digits are written.
//
// Two's complement math.MinInt64 in base 2 and base 8 is written without a
// sign place: its leading digit is already the maximum digit.
package integer
