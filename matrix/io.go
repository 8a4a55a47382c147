// SPDX-License-Identifier: MIT

// Package matrix - textual stream contract.
//
// Format:
//   - Output: one line per row; each row is written in the vector format
//     (elements followed by the separator) and ends with the line terminator.
//     Lower-triangle cells are absent, so row i carries Size()-i elements.
//   - Input: rows in order, each reading its own length of whitespace-separated
//     elements. Line structure is not enforced.

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/utmatrix/internal/textfmt"
	"github.com/katalvlaran/utmatrix/vector"
)

const ctxScan = "Scan"

// Compile-time assertion for io.WriterTo conformance.
var _ io.WriterTo = (*Triangular[float64])(nil)

// WriteTo writes m in the default text format. Implements io.WriterTo.
func (m *Triangular[T]) WriteTo(w io.Writer) (int64, error) {
	return Write(w, m)
}

// Write writes m to w using opts on top of the defaults.
// Returns the byte count and the first write error.
func Write[T Number](w io.Writer, m *Triangular[T], opts ...Option) (int64, error) {
	tw := textfmt.NewWriter(w, textfmt.Gather(opts...))
	for _, row := range m.rows {
		for _, x := range row.Values() {
			tw.Elem(x)
		}
		tw.EndLine()
	}

	return tw.Result()
}

// Scan reads every row of m from r.
// MAIN DESCRIPTION:
//   - All-or-nothing: rows are scanned into clones and committed only after
//     the last row parsed.
//
// Errors:
//   - ErrMalformedInput (from the failing row, wrapped with its index).
//
// Complexity:
//   - Time O(total elements), Space O(total elements) for staging.
func (m *Triangular[T]) Scan(r io.Reader) error {
	rs := textfmt.RuneReader(r)
	staged := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		staged[i] = row.Clone()
		if err := staged[i].ScanFrom(rs); err != nil {
			return fmt.Errorf("Triangular.%s: row %d: %w", ctxScan, i, err)
		}
	}
	for i := range m.rows {
		_ = m.rows[i].Assign(staged[i])
	}

	return nil
}
