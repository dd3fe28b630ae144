package digest

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-ni/algorithm"
)

var (
	// ErrSessionState is returned when an operation is invoked out of order.
	ErrSessionState = errors.New("invalid session state")
	// ErrInvalidAlgorithmSpec is returned for an algorithm spec that can't be parsed.
	ErrInvalidAlgorithmSpec = errors.New("invalid algorithm spec")
	// ErrEmptyComponent is returned by FileComponent when the URL has no file component.
	ErrEmptyComponent = errors.New("empty file component")
	// ErrUnknownAlgorithm is returned when no primitive exists for the spec.
	ErrUnknownAlgorithm = algorithm.ErrUnknownAlgorithm
)

// StateError represents an operation called in the wrong phase.
type StateError struct {
	Op    string
	Phase Phase
}

func (e StateError) Error() string {
	return fmt.Sprintf("%s is not allowed in phase %s", e.Op, e.Phase)
}

// Unwrap returns ErrSessionState.
func (e StateError) Unwrap() error {
	return ErrSessionState
}

func errState(op string, phase Phase) error {
	return StateError{
		Op:    op,
		Phase: phase,
	}
}

// SpecError represents an algorithm spec rejected by ParseAlgorithm.
type SpecError struct {
	Spec    string
	Problem string
}

func (e SpecError) Error() string {
	return fmt.Sprintf("invalid algorithm spec '%s': %s", e.Spec, e.Problem)
}

// Unwrap returns ErrInvalidAlgorithmSpec.
func (e SpecError) Unwrap() error {
	return ErrInvalidAlgorithmSpec
}

func errSpec(spec, problem string) error {
	return SpecError{
		Spec:    spec,
		Problem: problem,
	}
}
