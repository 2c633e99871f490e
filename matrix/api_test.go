// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
)

func TestFacades_ShapeHelpers(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	r, c := z.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	src := MustFrom(t, [][]complex128{{1, 2i}, {3, 4}, {5i, 6}})
	like, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	assert.Equal(t, 3, like.Rows())
	assert.Equal(t, 2, like.Cols())
	assert.Equal(t, complex(0, 0), MustAt(t, like, 2, 1))

	_, err = matrix.ZerosLike(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFacades_CloneIsIndependent(t *testing.T) {
	src := MustFrom(t, [][]complex128{{1, 2}, {3, 4}})
	cp := matrix.CloneMatrix(src)
	require.NoError(t, cp.Set(0, 0, 9i))
	assert.Equal(t, complex(1, 0), MustAt(t, src, 0, 0))
	assert.Equal(t, 9i, MustAt(t, cp, 0, 0))
}

func TestFacades_Aliases(t *testing.T) {
	a := MustFrom(t, [][]complex128{{1, 1i}, {2, 3 - 1i}})
	b := MustFrom(t, [][]complex128{{0, 1}, {1i, 0}})

	viaT, err := matrix.T(a)
	require.NoError(t, err)
	want, err := matrix.Transpose(a)
	require.NoError(t, err)
	same, err := matrix.AllClose(want, viaT, 0)
	require.NoError(t, err)
	assert.True(t, same)

	viaH, err := matrix.H(a)
	require.NoError(t, err)
	assert.Equal(t, -1i, MustAt(t, viaH, 1, 0))

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	want, err = matrix.Mul(a, b)
	require.NoError(t, err)
	same, err = matrix.AllClose(want, p, 0)
	require.NoError(t, err)
	assert.True(t, same)
}
