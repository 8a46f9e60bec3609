// Package triangle builds rows of Pascal's triangle.
//
// Row i holds the binomial coefficients C(i,0) through C(i,i). Each interior
// value is the sum of the two values above it:
//
//	row[i][j] = row[i-1][j-1] + row[i-1][j]
//
// Values are math/big integers, so rows stay exact past the uint64 range
// (row 68 is the first with a value above 2^64).
package triangle
