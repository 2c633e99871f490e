// SPDX-License-Identifier: MIT

package main

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

// readMatrix loads a matrix file; see decodeMatrix for the format.
func readMatrix(path string) (*matrix.Dense, error) {
	if path == "" {
		return nil, errors.New("no matrix file given")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open matrix")
	}
	defer f.Close()

	m, err := decodeMatrix(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return m, nil
}

// decodeMatrix reads a row-major JSON matrix. Each entry is either a real
// number or a [re, im] pair, so [[1, [0, 1]], [[0, -1], 1]] is valid.
func decodeMatrix(r io.Reader) (*matrix.Dense, error) {
	var raw [][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "json")
	}
	rows := make([][]complex128, len(raw))
	for i, row := range raw {
		rows[i] = make([]complex128, len(row))
		for j, cell := range row {
			v, err := decodeEntry(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "entry (%d,%d)", i, j)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewDenseFrom(rows)
}

func decodeEntry(cell json.RawMessage) (complex128, error) {
	var x float64
	if err := json.Unmarshal(cell, &x); err == nil {
		return complex(x, 0), nil
	}
	var pair []float64
	if err := json.Unmarshal(cell, &pair); err != nil {
		return 0, errors.Errorf("want number or [re, im], got %s", cell)
	}
	if len(pair) != 2 {
		return 0, errors.Errorf("want [re, im], got %d numbers", len(pair))
	}

	return complex(pair[0], pair[1]), nil
}

// encodeMatrix writes m in the [re, im] pair format accepted by decodeMatrix.
func encodeMatrix(m *matrix.Dense) [][][2]float64 {
	r, c := m.Shape()
	data := m.RawData()
	out := make([][][2]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([][2]float64, c)
		for j := 0; j < c; j++ {
			v := data[i*c+j]
			out[i][j] = [2]float64{real(v), imag(v)}
		}
	}

	return out
}

// parsePattern parses "1,1,0,1" into a pattern. Blank fields are rejected.
func parsePattern(s string) (sampling.Pattern, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty pattern")
	}
	fields := strings.Split(s, ",")
	p := make(sampling.Pattern, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "pattern field %d", i)
		}
		p[i] = v
	}

	return p, nil
}

// parseFloats parses "1,0.5,1" into squeezing parameters.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty list")
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		out[i] = v
	}

	return out, nil
}

// seedFromLabel maps a text label onto a 64-bit RNG seed with SHAKE-256, so
// "--seed run-7" always reproduces the same unitary. A numeric label is used
// as-is.
func seedFromLabel(label string) int64 {
	if n, err := strconv.ParseInt(label, 10, 64); err == nil {
		return n
	}
	var buf [8]byte
	sha3.ShakeSum256(buf[:], []byte(label))

	return int64(binary.LittleEndian.Uint64(buf[:]))
}
