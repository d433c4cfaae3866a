// SPDX-License-Identifier: Unlicense OR MIT

// Package preset loads spinbox configurations from TOML files.
//
// A preset file holds a list of spinbox tables:
//
//	[[spinbox]]
//	name = "Scale"
//	min = 0.0
//	max = 10.0
//	decimals = 3
//	default = 1.0
//	steps = [1.0, 0.1, 0.01]
//	mode = "displacement"
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dccspin/dccspin/drag"
	"github.com/dccspin/dccspin/ladder"
	"github.com/dccspin/dccspin/widget"
)

// ErrNoName is returned for a preset without a name.
var ErrNoName = errors.New("preset: missing name")

// Preset configures one spinbox.
type Preset struct {
	Name     string    `toml:"name"`
	Min      float64   `toml:"min"`
	Max      float64   `toml:"max"`
	Decimals int       `toml:"decimals"`
	Default  float64   `toml:"default"`
	Value    *float64  `toml:"value"`
	Step     float64   `toml:"step"`
	Steps    []float64 `toml:"steps"`
	// PixelsForFullRange and Multiplier configure drag sensitivity.
	PixelsForFullRange float64     `toml:"pixels_for_full_range"`
	Multiplier         float64     `toml:"multiplier"`
	Threshold          float64     `toml:"threshold"`
	Mode               ladder.Mode `toml:"mode"`
}

type file struct {
	Spinbox []Preset `toml:"spinbox"`
}

// Load decodes and validates the presets in r.
func Load(r io.Reader) ([]Preset, error) {
	var f file
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(&f); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	for _, p := range f.Spinbox {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Spinbox, nil
}

// LoadFile loads the presets in the named file.
func LoadFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate checks p by applying it to a scratch spinbox.
func (p Preset) Validate() error {
	return p.apply(new(widget.Spinbox))
}

// Apply configures s from p. s is left unchanged if p is invalid.
func (p Preset) Apply(s *widget.Spinbox) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.apply(s)
}

func (p Preset) apply(s *widget.Spinbox) error {
	if p.Name == "" {
		return ErrNoName
	}
	if err := s.SetRange(p.Min, p.Max, p.Decimals); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if err := s.SetSteps(p.Steps...); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if err := s.SetStep(p.Step); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	s.SetDefault(p.Default)
	if p.Value != nil {
		s.SetValue(*p.Value)
	} else {
		s.Reset()
	}
	s.Drag = drag.Config{
		PixelsForFullRange: p.PixelsForFullRange,
		Multiplier:         p.Multiplier,
	}
	s.Threshold = p.Threshold
	s.LadderMode = p.Mode
	return nil
}
