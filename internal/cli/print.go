package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/pascal-triangle/internal/triangle"
)

// FormatRow joins the values of a row with single spaces.
//
// Example:
//
//	[1 4 6 4 1] → "1 4 6 4 1"
func FormatRow(row triangle.Row) string {
	return strings.Join(row.Strings(), " ")
}

// printTriangleText writes one line per row, row 0 first.
// An empty triangle writes nothing.
func printTriangleText(w io.Writer, tri triangle.Triangle) error {
	for _, row := range tri {
		if _, err := fmt.Fprintln(w, FormatRow(row)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// triangleJSON is the JSON output structure. big.Int values marshal as
// JSON numbers at full precision.
type triangleJSON struct {
	Rows []triangle.Row `json:"rows"`
}

// printTriangleJSON writes the triangle as an indented JSON object.
func printTriangleJSON(w io.Writer, tri triangle.Triangle) error {
	// Use an empty slice instead of nil so that zero rows prints [] not null.
	result := triangleJSON{Rows: make([]triangle.Row, 0, len(tri))}
	result.Rows = append(result.Rows, tri...)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode triangle as JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}
