// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the textual output.
// The option set is shared with package vector (see internal/textfmt);
// matrix adds the row terminator.
package matrix

import "github.com/katalvlaran/utmatrix/internal/textfmt"

// Option configures the textual output of Write.
type Option = textfmt.Option

// Text-format defaults, mirrored from the shared configuration.
const (
	DefaultSeparator = textfmt.DefaultSeparator
	DefaultLineEnd   = textfmt.DefaultLineEnd
	DefaultVerb      = textfmt.DefaultVerb
)

// WithSeparator sets the string written after every element (non-empty).
func WithSeparator(sep string) Option { return textfmt.WithSeparator(sep) }

// WithLineEnd sets the string written after every row.
func WithLineEnd(eol string) Option { return textfmt.WithLineEnd(eol) }

// WithVerb sets the fmt verb used for each element, e.g. "%4d".
func WithVerb(verb string) Option { return textfmt.WithVerb(verb) }
