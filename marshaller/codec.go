package marshaller

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type codec struct {
	encode func(v any) ([]byte, error)
	decode func(data []byte, v any) error
}

var codecs = map[Format]codec{
	FormatYAML:    {encode: yaml.Marshal, decode: yaml.Unmarshal},
	FormatMsgpack: {encode: msgpack.Marshal, decode: msgpack.Unmarshal},
}

// RecordMarshaller converts records of type T with one codec.
type RecordMarshaller[T any] struct {
	format Format
	codec  codec
}

func newRecordMarshaller[T any](format Format) RecordMarshaller[T] {
	return RecordMarshaller[T]{format: format, codec: codecs[format]}
}

// NewYAML returns a YAML marshaller for T.
func NewYAML[T any]() RecordMarshaller[T] {
	return newRecordMarshaller[T](FormatYAML)
}

// NewMsgpack returns a MessagePack marshaller for T.
func NewMsgpack[T any]() RecordMarshaller[T] {
	return newRecordMarshaller[T](FormatMsgpack)
}

// Format implements Marshaller.
func (m RecordMarshaller[T]) Format() Format {
	return m.format
}

// Marshal implements Marshaller.
func (m RecordMarshaller[T]) Marshal(record T) ([]byte, error) {
	data, err := m.codec.encode(record)
	if err != nil {
		return nil, errRecord[T](OpEncode, m.format, err)
	}

	return data, nil
}

// Unmarshal implements Marshaller.
func (m RecordMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := m.codec.decode(data, &out)
	if err != nil {
		return zero[T](), errRecord[T](OpDecode, m.format, err)
	}

	return out, nil
}
