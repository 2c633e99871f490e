// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
)

// Config for bosonprob. Flags fill it first; a JSON file given with -c
// overrides whatever it sets.
type Config struct {
	Workers           int     `json:"workers"`
	MaxDimension      int     `json:"maxdim"`
	ParallelThreshold int     `json:"parallel"`
	Epsilon           float64 `json:"epsilon"`
	CheckUnitary      bool    `json:"checkunitary"`
	MaxPatterns       int     `json:"maxpatterns"`
	JSON              bool    `json:"json"`
	Log               string  `json:"log"`
	Quiet             bool    `json:"quiet"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
