package triangle

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeRows is returned by Build when asked for fewer than zero rows.
var ErrNegativeRows = errors.New("row count must not be negative")

// Row is one level of the triangle. Row i has i+1 values.
type Row []*big.Int

// Triangle is an ordered list of rows, row 0 first.
type Triangle []Row

// Build returns the first n rows of Pascal's triangle.
//
// Build(0) returns an empty triangle. A negative n returns an error
// wrapping ErrNegativeRows. Every value is freshly allocated, so callers
// may modify the result without affecting other triangles.
func Build(n int) (Triangle, error) {
	if n < 0 {
		return nil, fmt.Errorf("build %d rows: %w", n, ErrNegativeRows)
	}

	rows := make(Triangle, 0, n)
	for i := 0; i < n; i++ {
		row := make(Row, 0, i+1)
		row = append(row, big.NewInt(1))
		for j := 1; j < i; j++ {
			prev := rows[i-1]
			row = append(row, new(big.Int).Add(prev[j-1], prev[j]))
		}
		if i > 0 {
			row = append(row, big.NewInt(1))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Strings returns the decimal text of each value in the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

// Sum adds up every value in the row. For row i the result is 2^i.
func (r Row) Sum() *big.Int {
	sum := new(big.Int)
	for _, v := range r {
		sum.Add(sum, v)
	}
	return sum
}
