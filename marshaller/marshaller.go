// Package marshaller encodes typed records into the output formats of the
// command line tool.
package marshaller

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownFormat is returned for a format name without a marshaller.
var ErrUnknownFormat = errors.New("unknown format")

// Format is a serialization format.
type Format int

const (
	// FormatYAML is YAML, as produced by gopkg.in/yaml.v3.
	FormatYAML Format = iota + 1
	// FormatMsgpack is MessagePack, as produced by vmihailenco/msgpack.
	FormatMsgpack
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "Format[" + strconv.Itoa(int(f)) + "]"
	}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Marshaller converts records of type T to and from one format.
type Marshaller[T any] interface {
	Format() Format
	Marshal(record T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// New returns the marshaller of records of type T for the format.
func New[T any](format Format) (Marshaller[T], error) {
	if _, ok := codecs[format]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return newRecordMarshaller[T](format), nil
}

func zero[T any]() T {
	var out T
	return out
}
