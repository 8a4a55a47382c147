// SPDX-License-Identifier: MIT

package textfmt

import (
	"bufio"
	"fmt"
	"io"
)

// Writer renders elements with a fixed Options value and keeps the first
// write error (sticky), so callers can emit a whole container and check once.
type Writer struct {
	w    io.Writer
	opts Options
	n    int64 // bytes written so far
	err  error // first error observed; later writes are skipped
}

// NewWriter wraps w with the given resolved options.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// Elem writes v using the configured verb followed by the separator.
func (tw *Writer) Elem(v any) {
	if tw.err != nil {
		return
	}
	n, err := fmt.Fprintf(tw.w, tw.opts.verb, v)
	tw.n += int64(n)
	if err != nil {
		tw.err = err
		return
	}
	tw.raw(tw.opts.separator)
}

// EndLine writes the configured row terminator.
func (tw *Writer) EndLine() {
	if tw.err != nil {
		return
	}
	tw.raw(tw.opts.lineEnd)
}

func (tw *Writer) raw(s string) {
	if s == "" {
		return
	}
	n, err := io.WriteString(tw.w, s)
	tw.n += int64(n)
	if err != nil {
		tw.err = err
	}
}

// Result reports the byte count and the first error, if any.
func (tw *Writer) Result() (int64, error) { return tw.n, tw.err }

// ReadScanner is a reader that can also push back one rune, which fmt's
// scanning functions use to avoid consuming look-ahead.
type ReadScanner interface {
	io.Reader
	io.RuneScanner
}

// RuneReader returns r itself when it already supports UnreadRune, otherwise a
// buffered wrapper. Reusing one value across consecutive scans keeps fmt from
// dropping look-ahead between tokens.
func RuneReader(r io.Reader) ReadScanner {
	if rs, ok := r.(ReadScanner); ok {
		return rs
	}

	return bufio.NewReader(r)
}

// ScanInto fills dst in order with whitespace-separated tokens read from r.
// Returns the index of the first element that failed along with the error;
// dst may be partially written on failure, so callers scan into scratch space.
func ScanInto[T any](r ReadScanner, dst []T) (int, error) {
	for i := range dst {
		if _, err := fmt.Fscan(r, &dst[i]); err != nil {
			return i, err
		}
	}

	return len(dst), nil
}
