// SPDX-License-Identifier: MIT

// Package textfmt holds the functional configuration for the textual stream
// format shared by vector and matrix. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Gather helper that resolves a list of options into Options.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts the written text and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options only affect writing. Reading is always whitespace-separated,
//     so any output produced with a whitespace separator can be read back.
package textfmt

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator follows every element written to a stream.
	DefaultSeparator = " "

	// DefaultLineEnd terminates every matrix row written to a stream.
	DefaultLineEnd = "\n"

	// DefaultVerb is the fmt verb used to render a single element.
	DefaultVerb = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSeparatorEmpty = "textfmt: WithSeparator: separator must not be empty"
	panicVerbInvalid    = "textfmt: WithVerb: verb must start with '%' and hold a single directive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective format after applying Option setters.
// Fields are unexported; callers read them through accessors.
type Options struct {
	separator string // DefaultSeparator
	lineEnd   string // DefaultLineEnd
	verb      string // DefaultVerb
}

// WithSeparator sets the string written after every element.
// Panics when sep is empty: adjacent elements would merge into one token.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.separator = sep }
}

// WithLineEnd sets the row terminator used by matrix output.
// An empty terminator is legal and concatenates rows.
func WithLineEnd(eol string) Option {
	return func(o *Options) { o.lineEnd = eol }
}

// WithVerb sets the fmt verb used for each element, e.g. "%.3f" or "%d".
// Panics unless verb holds exactly one formatting directive.
func WithVerb(verb string) Option {
	if !strings.HasPrefix(verb, "%") || strings.Count(verb, "%") != 1 {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// Defaults returns Options populated with the documented defaults.
func Defaults() Options {
	return Options{
		separator: DefaultSeparator,
		lineEnd:   DefaultLineEnd,
		verb:      DefaultVerb,
	}
}

// Gather resolves opts on top of Defaults in call order; nil options are skipped.
func Gather(opts ...Option) Options {
	o := Defaults()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Separator returns the element separator.
func (o Options) Separator() string { return o.separator }

// LineEnd returns the row terminator.
func (o Options) LineEnd() string { return o.lineEnd }

// Verb returns the element verb.
func (o Options) Verb() string { return o.verb }
