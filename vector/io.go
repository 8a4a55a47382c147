// SPDX-License-Identifier: MIT

// Package vector - textual stream contract.
//
// Format:
//   - Output: each element rendered with the configured verb and followed by
//     the separator, in index order (default "1 2 3 ").
//   - Input: exactly Size() whitespace-separated elements, in index order.

package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/utmatrix/internal/textfmt"
)

const ctxScan = "Scan"

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Compile-time assertion for io.WriterTo conformance.
var _ io.WriterTo = (*Vector[float64])(nil)

// WriteTo writes v in the default text format. Implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	return Write(w, v)
}

// Write writes v to w using opts on top of the defaults.
// Returns the byte count and the first write error.
func Write[T Number](w io.Writer, v *Vector[T], opts ...Option) (int64, error) {
	tw := textfmt.NewWriter(w, textfmt.Gather(opts...))
	for _, x := range v.data {
		tw.Elem(x)
	}

	return tw.Result()
}

// Scan reads exactly Size() whitespace-separated elements from r.
// MAIN DESCRIPTION:
//   - All-or-nothing: elements are read into scratch space and committed only
//     once every element parsed.
//
// Errors:
//   - ErrMalformedInput wrapping the underlying scan error (including io.EOF
//     when the stream ends early).
func (v *Vector[T]) Scan(r io.Reader) error {
	return v.ScanFrom(textfmt.RuneReader(r))
}

// ScanFrom is Scan on a reader that supports UnreadRune (e.g. *bufio.Reader,
// *strings.Reader); consecutive calls on the same reader continue where the
// previous one stopped.
func (v *Vector[T]) ScanFrom(r textfmt.ReadScanner) error {
	tmp := make([]T, len(v.data))
	if i, err := textfmt.ScanInto(r, tmp); err != nil {
		return fmt.Errorf("Vector.%s: element %d: %w: %w", ctxScan, v.start+i, ErrMalformedInput, err)
	}
	copy(v.data, tmp)

	return nil
}

// String renders v for diagnostics as "[a, b, c]".
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
