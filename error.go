package ni

import (
	"fmt"

	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/hasher"
	"github.com/tarantool/go-ni/namer"
)

var (
	// ErrMalformedName is returned for a missing or invalid scheme prefix or
	// a name that is too short.
	ErrMalformedName = namer.ErrMalformedName
	// ErrUnknownAlgorithm is returned when no supported algorithm is named.
	ErrUnknownAlgorithm = algorithm.ErrUnknownAlgorithm
	// ErrOutputOverflow is returned when the result would exceed the capacity.
	ErrOutputOverflow = namer.ErrOutputOverflow
	// ErrPrimitiveFailure is returned when the digest primitive fails.
	ErrPrimitiveFailure = hasher.ErrPrimitiveFailure
)

// UnknownAlgorithmError represents an error for a name without a known algorithm.
type UnknownAlgorithmError struct {
	Name string
}

func (e UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("no supported hash algorithm in '%s'", e.Name)
}

// Unwrap returns ErrUnknownAlgorithm.
func (e UnknownAlgorithmError) Unwrap() error {
	return ErrUnknownAlgorithm
}

func errUnknownAlgorithm(name string) error {
	return UnknownAlgorithmError{Name: name}
}

// DigestLengthError represents a digest of unexpected length returned by the hasher.
type DigestLengthError struct {
	Hasher   string
	Expected int
	Got      int
}

func (e DigestLengthError) Error() string {
	return fmt.Sprintf("hasher %q returned %d bytes, expected %d", e.Hasher, e.Got, e.Expected)
}

// Unwrap returns ErrPrimitiveFailure.
func (e DigestLengthError) Unwrap() error {
	return ErrPrimitiveFailure
}

func errMalformedName(name, problem string) error {
	return namer.InvalidNameError{Name: name, Problem: problem}
}
