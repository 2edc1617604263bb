// Package digit provides the alphabet of positional digit strings.
//
// Every byte of a digit string belongs to one of four classes:
//
//  | Class     | Abbr | Bytes                          | Legal when                     |
//  |-----------|------|--------------------------------|--------------------------------|
//  | Separator | s    | \t \n \v \f \r space _         | always                         |
//  | Sign      | n    | -                              | negative sign notation only    |
//  | Digit     | d    | 0-9, a-z, A-Z                  | value less than the base       |
//  | Invalid   | x    | anything else                  | never                          |
//
// Letters denote the values 10 through 35 regardless of case. Base 1 has the
// single digit 0; a unary digit string is a tally of zeros.
//
// The sign of a digit string is located at the first byte that isn't a
// separator. Depending on the notation it is either a negative sign or the
// leading digit of the string (the sign place).
package digit
