// Package planner runs the sizing pipeline for one building: column, slab,
// beams, then the quantity aggregation.
package planner

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/darshoned/DfMA/internal/beam"
	"github.com/darshoned/DfMA/internal/ec2"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

// DefaultFloorHeight is the floor-to-floor height when none is given.
const DefaultFloorHeight units.Meters = 6

// Input is one building scenario.
type Input struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Grid (m)
	S1          units.Meters `json:"s1"`
	S2          units.Meters `json:"s2"`
	Length      units.Meters `json:"length"`
	Width       units.Meters `json:"width"`
	FloorHeight units.Meters `json:"floor_height,omitempty"`

	// Loads (kN/m²)
	LiveLoad float64 `json:"live_load"`
	DeadLoad float64 `json:"dead_load,omitempty"`

	// Structural systems
	Column system.Column `json:"column"`
	Beam   system.Beam   `json:"beam"`
	Slab   system.Slab   `json:"slab"`

	Materials ec2.Materials `json:"materials"`
}

// Selection returns the requested column/beam/slab systems.
func (in Input) Selection() system.Selection {
	return system.Selection{Column: in.Column, Beam: in.Beam, Slab: in.Slab}
}

// WithDefaults fills the optional fields.
func (in Input) WithDefaults() Input {
	if in.FloorHeight == 0 {
		in.FloorHeight = DefaultFloorHeight
	}
	if in.DeadLoad == 0 {
		in.DeadLoad = beam.DefaultDeadLoad
	}
	in.Materials = in.Materials.WithDefaults()
	return in
}

// Validate checks the scenario and canonicalises the system labels.
func (in *Input) Validate() error {
	for _, f := range []struct {
		field string
		value float64
	}{
		{"s1", float64(in.S1)},
		{"s2", float64(in.S2)},
		{"length", float64(in.Length)},
		{"width", float64(in.Width)},
	} {
		if !units.Finite(f.value) {
			return &ValidationError{Field: f.field, Reason: "must be a finite number"}
		}
		if f.value <= 0 {
			return &ValidationError{Field: f.field, Reason: fmt.Sprintf("must be positive, got %g", f.value)}
		}
	}
	if !units.Finite(float64(in.FloorHeight)) || in.FloorHeight < 0 {
		return &ValidationError{Field: "floor_height", Reason: "must be positive"}
	}
	if !units.Finite(in.LiveLoad) || in.LiveLoad < 0 {
		return &ValidationError{Field: "live_load", Reason: fmt.Sprintf("must be zero or positive, got %g", in.LiveLoad)}
	}
	if !units.Finite(in.DeadLoad) || in.DeadLoad < 0 {
		return &ValidationError{Field: "dead_load", Reason: fmt.Sprintf("must be zero or positive, got %g", in.DeadLoad)}
	}

	var err error
	if in.Column, err = system.ParseColumn(string(in.Column)); err != nil {
		return &ValidationError{Field: "column", Reason: err.Error()}
	}
	if in.Beam, err = system.ParseBeam(string(in.Beam)); err != nil {
		return &ValidationError{Field: "beam", Reason: err.Error()}
	}
	if in.Slab, err = system.ParseSlab(string(in.Slab)); err != nil {
		return &ValidationError{Field: "slab", Reason: err.Error()}
	}
	return in.Selection().Validate()
}

// ValidationError represents an invalid scenario field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// LoadFromFile loads a scenario from a JSON file
func LoadFromFile(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a JSON scenario.
func Parse(data []byte) (*Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}
