// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

// report is the --json envelope. ID is fresh per invocation so outputs of a
// batch of runs can be told apart after they are collected.
type report struct {
	ID      string      `json:"id"`
	Command string      `json:"command"`
	Result  interface{} `json:"result"`
}

type outcomeJSON struct {
	Pattern     []int   `json:"pattern"`
	Probability float64 `json:"probability"`
}

// printer renders command results in text or JSON.
type printer struct {
	w       io.Writer
	errw    io.Writer
	json    bool
	command string
}

func newPrinter(c *cli.Context, config *Config) *printer {
	errw := c.App.ErrWriter
	if errw == nil {
		errw = os.Stderr
	}

	return &printer{w: c.App.Writer, errw: errw, json: config.JSON, command: c.Command.Name}
}

func (p *printer) emit(result interface{}, text string) error {
	if !p.json {
		_, err := fmt.Fprintln(p.w, text)
		return err
	}
	enc := json.NewEncoder(p.w)

	return enc.Encode(report{ID: uuid.NewString(), Command: p.command, Result: result})
}

func (p *printer) amplitude(v complex128) error {
	return p.emit([2]float64{real(v), imag(v)}, strconv.FormatComplex(v, 'g', -1, 128))
}

func (p *printer) probability(v float64) error {
	return p.emit(v, strconv.FormatFloat(v, 'g', 12, 64))
}

func (p *printer) outcomes(out []sampling.Outcome) error {
	if p.json {
		rows := make([]outcomeJSON, len(out))
		for i, oc := range out {
			rows[i] = outcomeJSON{Pattern: oc.Pattern, Probability: oc.Probability}
		}

		return p.emit(rows, "")
	}
	for _, oc := range out {
		if _, err := fmt.Fprintf(p.w, "%s\t%.12g\n", oc.Pattern, oc.Probability); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(p.w, "total\t%.12g\n", sampling.TotalProbability(out))

	return err
}

func (p *printer) dense(m *matrix.Dense) error {
	enc := encodeMatrix(m)
	if p.json {
		return p.emit(enc, "")
	}
	b, err := json.Marshal(enc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(b))

	return err
}

// warnf prints a red warning line on the error stream.
func (p *printer) warnf(format string, a ...interface{}) {
	color.New(color.FgRed).Fprintf(p.errw, format+"\n", a...)
}
