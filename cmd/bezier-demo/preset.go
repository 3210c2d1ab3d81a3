package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	bezier "github.com/tphakala/go-bezier"
)

// presetPoint is one control point in a preset file.
type presetPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// preset describes the rational curve printed by the demo.
type preset struct {
	Points  []presetPoint `yaml:"points"`
	Weights []float64     `yaml:"weights"`
	Samples int           `yaml:"samples,omitempty"`
}

var errEmptyPreset = errors.New("preset has no points")

// defaultPreset returns the built-in 7-point curve with uniform weights.
func defaultPreset() preset {
	p := preset{
		Points: []presetPoint{
			{1, 0, 0},
			{2, 2, 1},
			{3, 0, 2},
			{4, -2, 1},
			{5, 0, 0},
			{6, 2, -1},
			{7, 0, -2},
		},
		Samples: defaultSamples,
	}
	p.Weights = make([]float64, len(p.Points))
	for i := range p.Weights {
		p.Weights[i] = demoWeight
	}
	return p
}

// loadPreset reads a YAML preset. Missing weights default to 1.
func loadPreset(path string) (preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return preset{}, fmt.Errorf("unable to read preset %s: %w", path, err)
	}

	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return preset{}, fmt.Errorf("unable to parse preset %s: %w", path, err)
	}
	if len(p.Points) == 0 {
		return preset{}, fmt.Errorf("%s: %w", path, errEmptyPreset)
	}
	if len(p.Weights) == 0 {
		p.Weights = make([]float64, len(p.Points))
		for i := range p.Weights {
			p.Weights[i] = 1
		}
	}
	return p, nil
}

// marshal encodes p as YAML.
func (p preset) marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// controlPoints converts the preset to evaluator inputs of type F.
func controlPoints[F bezier.Float](p preset) ([]bezier.Point[F], []F) {
	pts := make([]bezier.Point[F], len(p.Points))
	for i, pp := range p.Points {
		pts[i] = bezier.Pt(F(pp.X), F(pp.Y), F(pp.Z))
	}
	weights := make([]F, len(p.Weights))
	for i, w := range p.Weights {
		weights[i] = F(w)
	}
	return pts, weights
}
