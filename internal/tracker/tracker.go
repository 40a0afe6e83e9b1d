// Package tracker keeps the running state of a tracked meminfo counter.
package tracker

import (
	"errors"
	"fmt"
	"strconv"

	reader "meminfo/internal/memory"
)

// UnknownUnits labels a range that has not seen a sample yet.
const UnknownUnits = "Unknown"

var (
	// ErrCounterMissing is returned when the source has no line for a counter.
	ErrCounterMissing = errors.New("counter not found in source")

	// ErrUnparseable is matched by every *ParseError.
	ErrUnparseable = errors.New("unparseable numeric field")
)

// ParseError reports a counter value that is not an integer.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numeric part (%q) of a meminfo line could not be parsed: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrUnparseable }

// MemRange is the latest value of a counter together with the highest value
// seen for it since the process started.
type MemRange struct {
	Current float64
	Highest float64

	// Units is what the kernel reported alongside the value, expected to be "kB".
	Units string
}

func NewMemRange() MemRange {
	return MemRange{Units: UnknownUnits}
}

// Convert turns a sample into a numeric value and its unit. ok is false when
// the counter was absent from the source.
func Convert(entry reader.Sample, ok bool) (float64, string, error) {
	if !ok {
		return 0, "", ErrCounterMissing
	}
	value, err := strconv.ParseInt(entry.Value, 10, 64)
	if err != nil {
		return 0, "", &ParseError{Raw: entry.Value, Err: err}
	}
	return float64(value), entry.Unit, nil
}

// Update applies a sample to the range. If the sample can't be converted the
// range is left exactly as it was and the conversion error is returned.
//
// The units of a counter are taken from the latest sample without rescaling
// Highest. The kernel prints these lines with a fixed "kB" suffix today, so a
// unit change between polls can't happen yet.
func (r *MemRange) Update(entry reader.Sample, ok bool) error {
	value, units, err := Convert(entry, ok)
	if err != nil {
		return err
	}

	r.Units = units
	if value > r.Highest {
		r.Current = value
		r.Highest = value
	} else {
		r.Current = value
	}
	return nil
}

// Fraction is how full a level bar for this range should be, in [0, 1].
func (r MemRange) Fraction() float64 {
	if r.Highest <= 0 {
		return 0
	}
	f := r.Current / r.Highest
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
