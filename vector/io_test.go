// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for the textual stream contract.
package vector_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/vector"
)

// TestWriteTo_DefaultFormat checks element order and the trailing separator.
func TestWriteTo_DefaultFormat(t *testing.T) {
	v := mustFrom(t, 3, 1, 2, 3)
	var buf bytes.Buffer

	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "1 2 3 ", buf.String())
	require.Equal(t, int64(buf.Len()), n)
}

// TestWrite_Options applies separator and verb overrides.
func TestWrite_Options(t *testing.T) {
	v := mustFrom(t, 0, 0.5, 2.0)
	var buf bytes.Buffer

	_, err := vector.Write(&buf, v, vector.WithSeparator(";"), vector.WithVerb("%.2f"))
	require.NoError(t, err)
	require.Equal(t, "0.50;2.00;", buf.String())
}

// TestWrite_Options_PanicOnNonsense mirrors the options contract.
func TestWrite_Options_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { vector.WithSeparator("") })
	require.Panics(t, func() { vector.WithVerb("v") })
	require.Panics(t, func() { vector.WithVerb("%d%d") })
}

// TestWriteTo_PropagatesWriterError surfaces the first write failure.
func TestWriteTo_PropagatesWriterError(t *testing.T) {
	boom := errors.New("boom")
	v := mustFrom(t, 0, 1, 2)

	_, err := v.WriteTo(failingWriter{err: boom})
	require.ErrorIs(t, err, boom)
}

// TestScan_ReadsSizeElements reads exactly Size() tokens in index order.
func TestScan_ReadsSizeElements(t *testing.T) {
	v := mustVector[int](t, 3, 1)
	r := strings.NewReader("4\n5   6 7")

	require.NoError(t, v.Scan(r))
	require.Equal(t, []int{4, 5, 6}, v.Values())

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, " 7", string(rest), "only Size() tokens are consumed")
}

// TestScan_RoundTrip reads back what WriteTo produced.
func TestScan_RoundTrip(t *testing.T) {
	src := mustFrom(t, 0, 1.25, -3.5, 8)
	var buf bytes.Buffer
	_, err := src.WriteTo(&buf)
	require.NoError(t, err)

	dst := mustVector[float64](t, 3, 0)
	require.NoError(t, dst.Scan(&buf))
	require.True(t, dst.Equal(src))
}

// TestScan_AllOrNothing leaves the vector untouched on malformed input.
func TestScan_AllOrNothing(t *testing.T) {
	cases := map[string]string{
		"short stream": "1 2",
		"bad token":    "1 x 3",
		"empty":        "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			v := mustFrom(t, 0, 9, 9, 9)
			err := v.Scan(strings.NewReader(in))
			require.ErrorIs(t, err, vector.ErrMalformedInput)
			require.Equal(t, []int{9, 9, 9}, v.Values())
		})
	}
}

// TestString renders the diagnostic form.
func TestString(t *testing.T) {
	require.Equal(t, "[1, 2, 3]", mustFrom(t, 0, 1, 2, 3).String())
	require.Equal(t, "[]", mustVector[int](t, 0, 0).String())
}

// TestScanFrom_SharedReader continues consecutive scans on one reader.
func TestScanFrom_SharedReader(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("1 2\n3 4 5"))
	a := mustVector[int](t, 2, 0)
	b := mustVector[int](t, 3, 1)

	require.NoError(t, a.ScanFrom(r))
	require.NoError(t, b.ScanFrom(r))
	require.Equal(t, []int{1, 2}, a.Values())
	require.Equal(t, []int{3, 4, 5}, b.Values())

	err := a.ScanFrom(r) // stream exhausted
	require.ErrorIs(t, err, vector.ErrMalformedInput)
	require.Equal(t, []int{1, 2}, a.Values())
}
