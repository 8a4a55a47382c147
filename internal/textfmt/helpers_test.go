// SPDX-License-Identifier: MIT
package textfmt

import (
	"bytes"
	"errors"
)

var errFull = errors.New("textfmt test: writer full")

// limitedWriter accepts at most max bytes in total, then fails.
type limitedWriter struct {
	buf bytes.Buffer
	max int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	room := w.max - w.buf.Len()
	if room <= 0 {
		return 0, errFull
	}
	if len(p) > room {
		w.buf.Write(p[:room])
		return room, errFull
	}

	return w.buf.Write(p)
}
