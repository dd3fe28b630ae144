package marshaller

import (
	"fmt"
)

// Op is the direction of a failed conversion.
type Op string

const (
	// OpEncode is turning a record into bytes.
	OpEncode Op = "encode"
	// OpDecode is turning bytes back into a record.
	OpDecode Op = "decode"
)

// RecordError is returned when a record can't be converted to or from a format.
type RecordError struct {
	Op     Op
	Format Format
	Record string // Go type of the record.
	parent error
}

func errRecord[T any](op Op, format Format, parent error) error {
	if parent == nil {
		return nil
	}

	return RecordError{
		Op:     op,
		Format: format,
		Record: fmt.Sprintf("%T", zero[T]()),
		parent: parent,
	}
}

// Unwrap returns the encoder error.
func (e RecordError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the error.
func (e RecordError) Error() string {
	return fmt.Sprintf("cannot %s %s as %s: %s", e.Op, e.Record, e.Format, e.parent)
}
