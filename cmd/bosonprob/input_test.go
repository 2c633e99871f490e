// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

func TestDecodeMatrix(t *testing.T) {
	m, err := decodeMatrix(strings.NewReader(`[[1, [0, 1]], [[0, -1], 2.5]]`))
	require.NoError(t, err)
	want, err := matrix.NewDenseFrom([][]complex128{{1, 1i}, {-1i, 2.5}})
	require.NoError(t, err)
	same, err := matrix.AllClose(want, m, 0)
	require.NoError(t, err)
	assert.True(t, same)

	empty, err := decodeMatrix(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestDecodeMatrix_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"not json":     `[[1, 2`,
		"string entry": `[["a"]]`,
		"triple":       `[[[1, 2, 3]]]`,
		"ragged":       `[[1, 2], [3]]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeMatrix(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
	_, err := decodeMatrix(strings.NewReader(`[[1, 2], [3]]`))
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	u, err := matrix.RandomUnitary(3, 5)
	require.NoError(t, err)
	b, err := json.Marshal(encodeMatrix(u))
	require.NoError(t, err)

	back, err := decodeMatrix(bytes.NewReader(b))
	require.NoError(t, err)
	same, err := matrix.AllClose(u, back, 0)
	require.NoError(t, err)
	assert.True(t, same, "float64 JSON encoding is exact")
}

func TestParsePattern(t *testing.T) {
	p, err := parsePattern("1, 1,0,1")
	require.NoError(t, err)
	assert.Equal(t, sampling.Pattern{1, 1, 0, 1}, p)

	_, err = parsePattern("")
	assert.Error(t, err)
	_, err = parsePattern("1,,2")
	assert.Error(t, err)
	_, err = parsePattern("1,x")
	assert.Error(t, err)

	// Sign is checked by the sampling package, not the parser.
	p, err = parsePattern("-1,2")
	require.NoError(t, err)
	assert.Equal(t, sampling.Pattern{-1, 2}, p)
}

func TestParseFloats(t *testing.T) {
	r, err := parseFloats("1,0.5, 2e-1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0.2}, r)

	_, err = parseFloats(" ")
	assert.Error(t, err)
	_, err = parseFloats("1,abc")
	assert.Error(t, err)
}

func TestSeedFromLabel(t *testing.T) {
	assert.Equal(t, int64(42), seedFromLabel("42"))
	assert.Equal(t, int64(-3), seedFromLabel("-3"))
	assert.Equal(t, seedFromLabel("run-7"), seedFromLabel("run-7"))
	assert.NotEqual(t, seedFromLabel("run-7"), seedFromLabel("run-8"))
}
