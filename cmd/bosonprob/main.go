// SPDX-License-Identifier: MIT

// Command bosonprob evaluates permanents, hafnians and photonic sampling
// probabilities from JSON matrix files.
package main

import (
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
	"github.com/katalvlaran/bosonic/sampling"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	checkError(newApp().Run(os.Args))
}

func newApp() *cli.App {
	myApp := cli.NewApp()
	myApp.Name = "bosonprob"
	myApp.Usage = "permanent, hafnian and boson sampling probabilities"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "worker goroutines, 0 for GOMAXPROCS",
		},
		cli.IntFlag{
			Name:  "maxdim",
			Value: hafnian.DefaultMaxDimension,
			Usage: "largest matrix dimension handed to the evaluator",
		},
		cli.IntFlag{
			Name:  "parallel",
			Value: hafnian.DefaultParallelThreshold,
			Usage: "smallest dimension evaluated in parallel",
		},
		cli.Float64Flag{
			Name:  "epsilon",
			Value: sampling.DefaultEpsilon,
			Usage: "tolerance of the unitarity and symmetry checks",
		},
		cli.BoolFlag{
			Name:  "checkunitary",
			Usage: "reject interferometers that are not unitary within epsilon",
		},
		cli.IntFlag{
			Name:  "maxpatterns",
			Value: sampling.DefaultMaxPatterns,
			Usage: "largest number of patterns a distribution may enumerate",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "print results as JSON",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress the parameter log",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "", // when the value is not empty, the config path must exists
			Usage: "config from json file, which will override the command from shell",
		},
	}
	myApp.Commands = []cli.Command{
		{
			Name:   "permanent",
			Usage:  "permanent of a square matrix",
			Flags:  []cli.Flag{matrixFlag()},
			Action: permanentAction,
		},
		{
			Name:  "hafnian",
			Usage: "hafnian of a symmetric matrix (upper triangle is read)",
			Flags: []cli.Flag{
				matrixFlag(),
				cli.BoolFlag{Name: "loop", Usage: "loop hafnian: diagonal entries are self-loop weights"},
			},
			Action: hafnianAction,
		},
		{
			Name:  "boson",
			Usage: "boson sampling probability |perm(U_st)|²/(∏in!∏out!)",
			Flags: []cli.Flag{
				unitaryFlag(),
				cli.StringFlag{Name: "input,i", Usage: "input occupation, e.g. 1,1,0,1"},
				cli.StringFlag{Name: "output,o", Usage: "output occupation, e.g. 2,0,0,1"},
				cli.BoolFlag{Name: "amplitude", Usage: "print the complex transition amplitude instead"},
			},
			Action: bosonAction,
		},
		{
			Name:  "gaussian",
			Usage: "Gaussian boson sampling probability of squeezed vacua",
			Flags: []cli.Flag{
				unitaryFlag(),
				cli.StringFlag{Name: "squeezing,r", Usage: "squeezing parameters, e.g. 1,1,1,1"},
				cli.StringFlag{Name: "output,o", Usage: "output occupation, e.g. 1,1,0,0"},
			},
			Action: gaussianAction,
		},
		{
			Name:  "distribution",
			Usage: "probabilities of every output pattern",
			Flags: []cli.Flag{
				unitaryFlag(),
				cli.StringFlag{Name: "input,i", Usage: "boson sampling input occupation"},
				cli.StringFlag{Name: "squeezing,r", Usage: "Gaussian squeezing parameters (instead of --input)"},
				cli.IntFlag{Name: "cutoff", Value: 4, Usage: "largest photon number listed for Gaussian states"},
			},
			Action: distributionAction,
		},
		{
			Name:  "haar",
			Usage: "print a Haar-random unitary as JSON",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "modes,n", Value: 4, Usage: "number of modes"},
				cli.StringFlag{Name: "seed", Value: "1", Usage: "integer seed or any text label"},
			},
			Action: haarAction,
		},
	}

	return myApp
}

func matrixFlag() cli.Flag {
	return cli.StringFlag{Name: "matrix,m", Usage: "JSON matrix file"}
}

func unitaryFlag() cli.Flag {
	return cli.StringFlag{Name: "unitary,u", Usage: "JSON interferometer file"}
}

// loadConfig merges the global flags with the optional JSON config and sets
// up logging.
func loadConfig(c *cli.Context) (*Config, error) {
	config := Config{}
	config.Workers = c.GlobalInt("workers")
	config.MaxDimension = c.GlobalInt("maxdim")
	config.ParallelThreshold = c.GlobalInt("parallel")
	config.Epsilon = c.GlobalFloat64("epsilon")
	config.CheckUnitary = c.GlobalBool("checkunitary")
	config.MaxPatterns = c.GlobalInt("maxpatterns")
	config.JSON = c.GlobalBool("json")
	config.Log = c.GlobalString("log")
	config.Quiet = c.GlobalBool("quiet")

	if c.GlobalString("c") != "" {
		if err := parseJSONConfig(&config, c.GlobalString("c")); err != nil {
			return nil, errors.Wrap(err, "config")
		}
	}

	if config.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	if config.MaxDimension < 0 || config.MaxDimension > hafnian.HardMaxDimension {
		return nil, errors.Errorf("maxdim must be in [0, %d]", hafnian.HardMaxDimension)
	}
	if config.ParallelThreshold < 0 {
		return nil, errors.New("parallel must not be negative")
	}
	if config.Epsilon < 0 || math.IsNaN(config.Epsilon) || math.IsInf(config.Epsilon, 0) {
		return nil, errors.New("epsilon must be finite and not negative")
	}
	if config.MaxPatterns <= 0 {
		return nil, errors.New("maxpatterns must be positive")
	}

	if config.Log != "" {
		f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, errors.Wrap(err, "log file")
		}
		log.SetOutput(f)
	}

	if !config.Quiet {
		log.Println("version:", VERSION)
		log.Println("command:", c.Command.Name)
		log.Println("workers:", config.Workers)
		log.Println("maxdim:", config.MaxDimension, "parallel:", config.ParallelThreshold)
		log.Println("epsilon:", config.Epsilon, "checkunitary:", config.CheckUnitary)
	}

	return &config, nil
}

func (config *Config) evaluatorOptions() []hafnian.Option {
	return []hafnian.Option{
		hafnian.WithMaxDimension(config.MaxDimension),
		hafnian.WithWorkers(config.Workers),
		hafnian.WithParallelThreshold(config.ParallelThreshold),
	}
}

func (config *Config) samplingOptions() []sampling.Option {
	opts := []sampling.Option{
		sampling.WithEpsilon(config.Epsilon),
		sampling.WithWorkers(config.Workers),
		sampling.WithMaxPatterns(config.MaxPatterns),
		sampling.WithEvaluator(config.evaluatorOptions()...),
	}
	if config.CheckUnitary {
		opts = append(opts, sampling.WithUnitarityCheck())
	}

	return opts
}

// warnNonUnitary flags an interferometer that would fail --checkunitary, so
// unnormalized probabilities do not go unnoticed.
func warnNonUnitary(p *printer, u *matrix.Dense, config *Config) {
	if config.CheckUnitary {
		return
	}
	ok, err := matrix.IsUnitary(u, matrix.WithEpsilon(config.Epsilon))
	if err == nil && !ok {
		p.warnf("WARNING: interferometer is not unitary within %g; probabilities are not normalized.", config.Epsilon)
	}
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
