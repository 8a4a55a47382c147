// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/utmatrix/internal/textfmt"

// Option configures the textual output of Write.
type Option = textfmt.Option

// Text-format defaults, mirrored from the shared configuration.
const (
	DefaultSeparator = textfmt.DefaultSeparator
	DefaultVerb      = textfmt.DefaultVerb
)

// WithSeparator sets the string written after every element (non-empty).
func WithSeparator(sep string) Option { return textfmt.WithSeparator(sep) }

// WithVerb sets the fmt verb used for each element, e.g. "%.2f".
func WithVerb(verb string) Option { return textfmt.WithVerb(verb) }
