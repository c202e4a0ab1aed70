package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatchingProduct means no hollow-core product satisfies a span/load query.
	ErrNoMatchingProduct = errors.New("no matching hollow-core product")

	// ErrUnknownActivity means a productivity category is missing from the table.
	ErrUnknownActivity = errors.New("unknown productivity activity")
)

// LookupError describes the capacity query that could not be satisfied.
type LookupError struct {
	WidthClass float64 // m
	Span       float64 // m
	Load       float64 // kN/m²
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %.1fm units, span %.2fm, load %.2f kN/m²",
		ErrNoMatchingProduct, e.WidthClass, e.Span, e.Load)
}

func (e *LookupError) Unwrap() error { return ErrNoMatchingProduct }

// MissingRateError names the productivity category that was not found.
type MissingRateError struct {
	Category string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownActivity, e.Category)
}

func (e *MissingRateError) Unwrap() error { return ErrUnknownActivity }
