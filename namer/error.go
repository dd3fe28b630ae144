package namer

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedName is returned for names with a missing or invalid scheme
	// or structure.
	ErrMalformedName = errors.New("malformed name")
	// ErrOutputOverflow is returned when a produced name exceeds the capacity.
	ErrOutputOverflow = errors.New("name exceeds capacity")
)

// InvalidNameError represents an error for invalid name format.
type InvalidNameError struct {
	Name    string
	Problem string
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name '%s': %s", e.Name, e.Problem)
}

// Unwrap returns ErrMalformedName, so errors.Is can be used to match the kind.
func (e InvalidNameError) Unwrap() error {
	return ErrMalformedName
}

func errInvalidName(name string, problem string) error {
	return InvalidNameError{
		Name:    name,
		Problem: problem,
	}
}

// OverflowError represents an error for a name that doesn't fit the capacity.
type OverflowError struct {
	Length   int
	Capacity int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("name of %d bytes exceeds capacity of %d bytes", e.Length, e.Capacity)
}

// Unwrap returns ErrOutputOverflow.
func (e OverflowError) Unwrap() error {
	return ErrOutputOverflow
}
