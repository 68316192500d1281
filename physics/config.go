// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gazed/vu/math/vec2"
)

// config.go loads the solver's tunable knobs from YAML, the way the
// vu engine's load package reads its shader and scene configuration.

// Config groups every recognized tuning knob. Zero-value fields are
// replaced by DefaultConfig's defaults via Normalize.
type Config struct {
	Substeps               uint32  `yaml:"substeps"`
	Gravity                vec2.V  `yaml:"gravity"`
	EPAEpsilon             float64 `yaml:"epa_epsilon"`
	EPAMaxIters            int     `yaml:"epa_max_iters"`
	PolygonCorrectionScale float64 `yaml:"polygon_correction_scale"`
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		Substeps:               8,
		Gravity:                vec2.V{X: 0, Y: 1000},
		EPAEpsilon:             epaEpsilon,
		EPAMaxIters:            epaMaxIters,
		PolygonCorrectionScale: 0.05,
	}
}

// Normalize fills any zero-valued field with its default, so a caller
// supplying a partial YAML document still gets a usable Config.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.Substeps == 0 {
		c.Substeps = d.Substeps
	}
	if c.Gravity.AeqZ() {
		c.Gravity = d.Gravity
	}
	if c.EPAEpsilon == 0 {
		c.EPAEpsilon = d.EPAEpsilon
	}
	if c.EPAMaxIters == 0 {
		c.EPAMaxIters = d.EPAMaxIters
	}
	if c.PolygonCorrectionScale == 0 {
		c.PolygonCorrectionScale = d.PolygonCorrectionScale
	}
	return c
}

// LoadConfig reads and parses a YAML config document from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c.Normalize(), nil
}
