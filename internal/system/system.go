// Package system defines the closed vocabularies for the three structural
// selection axes and the matrix of combinations the engine supports.
package system

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCombination is returned when a column/beam/slab selection has
// no quantity rules.
var ErrUnsupportedCombination = errors.New("unsupported structural system combination")

// Column is the column system.
type Column string

const (
	CISColumn Column = "CIS Column"
	PCColumn  Column = "PC Column"
)

// Beam is the beam system. FlatSlabBeam means no discrete beams.
type Beam string

const (
	CISBeam      Beam = "CIS Beam"
	PTBeam       Beam = "PT Beam"
	FlatSlabBeam Beam = "PT Flat Slab"
)

// Slab is the slab system, including the split-span hollow-core variants.
type Slab string

const (
	CISSlab       Slab = "CIS Slab"
	PTFlatSlab    Slab = "PT Flat Slab"
	HC12Slab      Slab = "1.2HC Slab"
	HC24Slab      Slab = "2.4HC Slab"
	HC12SplitSlab Slab = "1.2HCS_S3"
	HC24SplitSlab Slab = "2.4HCS_S3"
)

// Columns, Beams and Slabs list every member of each vocabulary in display order.
var (
	Columns = []Column{CISColumn, PCColumn}
	Beams   = []Beam{CISBeam, PTBeam, FlatSlabBeam}
	Slabs   = []Slab{CISSlab, PTFlatSlab, HC12Slab, HC24Slab, HC12SplitSlab, HC24SplitSlab}
)

func (c Column) String() string { return string(c) }
func (b Beam) String() string { return string(b) }
func (s Slab) String() string { return string(s) }

// Precast reports whether the column is factory made.
func (c Column) Precast() bool { return c == PCColumn }

// HasBeams reports whether the beam system has discrete beams.
func (b Beam) HasBeams() bool { return b == CISBeam || b == PTBeam }

// PostTensioned reports whether the beam system is post-tensioned.
func (b Beam) PostTensioned() bool { return b == PTBeam || b == FlatSlabBeam }

// HollowCore reports whether the slab is a precast hollow-core plank system.
func (s Slab) HollowCore() bool {
	switch s {
	case HC12Slab, HC24Slab, HC12SplitSlab, HC24SplitSlab:
		return true
	}
	return false
}

// SplitSpan reports whether the slab is a split-span (S3) hollow-core variant.
func (s Slab) SplitSpan() bool { return s == HC12SplitSlab || s == HC24SplitSlab }

// UnitWidth returns the plank width class in metres, 0 for non hollow-core slabs.
func (s Slab) UnitWidth() float64 {
	switch s {
	case HC12Slab, HC12SplitSlab:
		return 1.2
	case HC24Slab, HC24SplitSlab:
		return 2.4
	}
	return 0
}

// Split returns the split-span equivalent of a full-span hollow-core slab.
// Other slabs are returned unchanged.
func (s Slab) Split() Slab {
	switch s {
	case HC12Slab:
		return HC12SplitSlab
	case HC24Slab:
		return HC24SplitSlab
	}
	return s
}

// ParseColumn parses a column system label, ignoring case.
func ParseColumn(s string) (Column, error) {
	for _, c := range Columns {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown column system %q (want one of %s)", s, join(Columns))
}

// ParseBeam parses a beam system label, ignoring case.
func ParseBeam(s string) (Beam, error) {
	for _, b := range Beams {
		if strings.EqualFold(strings.TrimSpace(s), string(b)) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown beam system %q (want one of %s)", s, join(Beams))
}

// ParseSlab parses a slab system label, ignoring case.
func ParseSlab(s string) (Slab, error) {
	for _, sl := range Slabs {
		if strings.EqualFold(strings.TrimSpace(s), string(sl)) {
			return sl, nil
		}
	}
	return "", fmt.Errorf("unknown slab system %q (want one of %s)", s, join(Slabs))
}

// Selection is one column/beam/slab choice.
type Selection struct {
	Column Column `json:"column"`
	Beam   Beam   `json:"beam"`
	Slab   Slab   `json:"slab"`
}

// String renders the selection the way the structure-type picker labels it.
func (s Selection) String() string {
	return fmt.Sprintf("%s + %s + %s", s.Beam, s.Slab, s.Column)
}

// Validate checks every axis is a known value and the combination is supported.
func (s Selection) Validate() error {
	if _, err := ParseColumn(string(s.Column)); err != nil {
		return err
	}
	if _, err := ParseBeam(string(s.Beam)); err != nil {
		return err
	}
	if _, err := ParseSlab(string(s.Slab)); err != nil {
		return err
	}

	switch {
	case s.Beam == FlatSlabBeam && s.Slab != PTFlatSlab:
		return fmt.Errorf("%w: %s needs a PT flat slab, got %s", ErrUnsupportedCombination, s.Beam, s.Slab)
	case s.Slab == PTFlatSlab && s.Beam != FlatSlabBeam:
		return fmt.Errorf("%w: %s has no discrete beams, got %s", ErrUnsupportedCombination, s.Slab, s.Beam)
	case s.Slab.HollowCore() && !s.Beam.HasBeams():
		return fmt.Errorf("%w: %s needs supporting beams", ErrUnsupportedCombination, s.Slab)
	case s.Slab == CISSlab && !s.Beam.HasBeams():
		return fmt.Errorf("%w: one-way %s needs supporting beams", ErrUnsupportedCombination, s.Slab)
	}
	return nil
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%q", string(v))
	}
	return strings.Join(parts, ", ")
}
