// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/matrix"
)

// TestFacades checks each facade against the method it delegates to.
func TestFacades(t *testing.T) {
	z, err := matrix.NewZeros[int](3)
	require.NoError(t, err)
	require.True(t, z.Equal(mustTriangular[int](t, 3)))

	two, err := matrix.NewFilled(3, 2)
	require.NoError(t, err)
	require.True(t, two.IsTriangular())
	want := mustTriangular[int](t, 3)
	fillConst(t, want, 2)
	require.True(t, two.Equal(want))

	sum, err := matrix.Sum(two, two)
	require.NoError(t, err)
	viaMethod, err := two.Add(two)
	require.NoError(t, err)
	require.True(t, sum.Equal(viaMethod))

	diff, err := matrix.Diff(two, two)
	require.NoError(t, err)
	require.True(t, diff.Equal(z))

	cp := matrix.CloneMatrix(two)
	require.True(t, cp.Equal(two))

	_, err = matrix.NewFilled(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	var nilM *matrix.Triangular[int]
	_, err = matrix.Sum(nilM, two)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Diff(nilM, two)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
