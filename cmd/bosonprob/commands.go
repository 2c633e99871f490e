// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

func permanentAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	m, err := readMatrix(c.String("matrix"))
	if err != nil {
		return err
	}
	v, err := hafnian.Permanent(m, config.evaluatorOptions()...)
	if err != nil {
		return errors.Wrap(err, "permanent")
	}

	return newPrinter(c, config).amplitude(v)
}

func hafnianAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	m, err := readMatrix(c.String("matrix"))
	if err != nil {
		return err
	}
	if ok, serr := matrix.IsSymmetric(m, matrix.WithEpsilon(config.Epsilon)); serr == nil && !ok {
		newPrinter(c, config).warnf("WARNING: matrix is not symmetric; only the upper triangle is used.")
	}

	var v complex128
	if c.Bool("loop") {
		v, err = hafnian.LoopHafnian(m, config.evaluatorOptions()...)
	} else {
		v, err = hafnian.Hafnian(m, config.evaluatorOptions()...)
	}
	if err != nil {
		return errors.Wrap(err, "hafnian")
	}

	return newPrinter(c, config).amplitude(v)
}

func bosonAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	u, err := readMatrix(c.String("unitary"))
	if err != nil {
		return err
	}
	in, err := parsePattern(c.String("input"))
	if err != nil {
		return errors.Wrap(err, "input")
	}
	out, err := parsePattern(c.String("output"))
	if err != nil {
		return errors.Wrap(err, "output")
	}
	p := newPrinter(c, config)
	warnNonUnitary(p, u, config)

	if c.Bool("amplitude") {
		amp, err := sampling.TransitionAmplitude(u, in, out, config.samplingOptions()...)
		if err != nil {
			return errors.Wrap(err, "boson")
		}

		return p.amplitude(amp)
	}
	prob, err := sampling.BosonSamplingProbability(u, in, out, config.samplingOptions()...)
	if err != nil {
		return errors.Wrap(err, "boson")
	}

	return p.probability(prob)
}

func gaussianAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	u, err := readMatrix(c.String("unitary"))
	if err != nil {
		return err
	}
	r, err := parseFloats(c.String("squeezing"))
	if err != nil {
		return errors.Wrap(err, "squeezing")
	}
	out, err := parsePattern(c.String("output"))
	if err != nil {
		return errors.Wrap(err, "output")
	}
	p := newPrinter(c, config)
	warnNonUnitary(p, u, config)

	// Photon-number-resolved patterns need the general formula.
	prob, err := sampling.GaussianPatternProbability(u, r, out, config.samplingOptions()...)
	if err != nil {
		return errors.Wrap(err, "gaussian")
	}

	return p.probability(prob)
}

func distributionAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	u, err := readMatrix(c.String("unitary"))
	if err != nil {
		return err
	}
	hasIn, hasR := c.String("input") != "", c.String("squeezing") != ""
	if hasIn == hasR {
		return errors.New("distribution: give exactly one of --input or --squeezing")
	}
	p := newPrinter(c, config)
	warnNonUnitary(p, u, config)

	var out []sampling.Outcome
	if hasIn {
		in, err := parsePattern(c.String("input"))
		if err != nil {
			return errors.Wrap(err, "input")
		}
		out, err = sampling.BosonSamplingDistribution(u, in, config.samplingOptions()...)
		if err != nil {
			return errors.Wrap(err, "distribution")
		}
	} else {
		r, err := parseFloats(c.String("squeezing"))
		if err != nil {
			return errors.Wrap(err, "squeezing")
		}
		if c.Int("cutoff") < 0 {
			return errors.New("distribution: cutoff must not be negative")
		}
		out, err = sampling.GaussianDistribution(u, r, c.Int("cutoff"), config.samplingOptions()...)
		if err != nil {
			return errors.Wrap(err, "distribution")
		}
	}

	return p.outcomes(out)
}

func haarAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	n := c.Int("modes")
	if n <= 0 {
		return errors.New("haar: modes must be positive")
	}
	u, err := matrix.RandomUnitary(n, seedFromLabel(c.String("seed")))
	if err != nil {
		return errors.Wrap(err, "haar")
	}

	return newPrinter(c, config).dense(u)
}
