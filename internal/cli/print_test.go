// Package cli — print_test.go covers the row formatting helpers without
// going through cobra.
package cli

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/pascal-triangle/internal/triangle"
)

func TestFormatRow(t *testing.T) {
	tests := []struct {
		name string
		row  triangle.Row
		want string
	}{
		{
			name: "empty row",
			row:  triangle.Row{},
			want: "",
		},
		{
			name: "single value",
			row:  triangle.Row{big.NewInt(1)},
			want: "1",
		},
		{
			name: "row four",
			row:  triangle.Row{big.NewInt(1), big.NewInt(4), big.NewInt(6), big.NewInt(4), big.NewInt(1)},
			want: "1 4 6 4 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRow(tt.row))
		})
	}
}

func TestPrintTriangleText(t *testing.T) {
	tri, err := triangle.Build(4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTriangleText(&buf, tri))
	assert.Equal(t, "1\n1 1\n1 2 1\n1 3 3 1\n", buf.String())
}

func TestPrintTriangleText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTriangleText(&buf, triangle.Triangle{}))
	assert.Empty(t, buf.String())
}

// TestPrintTriangleJSON decodes the output to check both structure and
// that large values survive as exact numbers.
func TestPrintTriangleJSON(t *testing.T) {
	tri, err := triangle.Build(71)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTriangleJSON(&buf, tri))

	var decoded struct {
		Rows [][]json.Number `json:"rows"`
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&decoded))

	require.Len(t, decoded.Rows, 71)
	assert.Equal(t, []json.Number{"1", "2", "1"}, decoded.Rows[2])
	assert.Equal(t, json.Number("112186277816662845432"), decoded.Rows[70][35])
}

func TestPrintTriangleJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTriangleJSON(&buf, nil))
	assert.JSONEq(t, `{"rows": []}`, buf.String())
}
