package main

import (
	"fmt"
	"io"

	"github.com/tarantool/go-ni/marshaller"
)

const formatText = "text"

// record is the structured result of a command.
type record struct {
	Name      string `msgpack:"name,omitempty"      yaml:"name,omitempty"`
	URL       string `msgpack:"url,omitempty"       yaml:"url,omitempty"`
	Algorithm string `msgpack:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Digest    string `msgpack:"digest,omitempty"    yaml:"digest,omitempty"`
	Result    string `msgpack:"result,omitempty"    yaml:"result,omitempty"`
	Binary    string `msgpack:"binary,omitempty"    yaml:"binary,omitempty"`
	Multihash string `msgpack:"multihash,omitempty" yaml:"multihash,omitempty"`
}

// algorithmRecord describes one row of the algorithm table or one session
// primitive.
type algorithmRecord struct {
	Token string `msgpack:"token"           yaml:"token"`
	Suite int    `msgpack:"suite,omitempty" yaml:"suite,omitempty"`
	Bits  int    `msgpack:"bits"            yaml:"bits"`
}

type algorithmsRecord struct {
	Names    []algorithmRecord `msgpack:"names"    yaml:"names"`
	Sessions []string          `msgpack:"sessions" yaml:"sessions"`
}

// printer writes either the text form or the marshalled record.
type printer struct {
	out    io.Writer
	text   bool
	format marshaller.Format
}

func newPrinter(out io.Writer, output string) (printer, error) {
	if output == formatText {
		return printer{out: out, text: true, format: 0}, nil
	}

	format, err := marshaller.ParseFormat(output)
	if err != nil {
		return printer{}, fmt.Errorf("invalid --output: %w", err)
	}

	return printer{out: out, text: false, format: format}, nil
}

func emit[T any](p printer, text string, rec T) error {
	if p.text {
		_, err := fmt.Fprintln(p.out, text)
		return err
	}

	marsh, err := marshaller.New[T](p.format)
	if err != nil {
		return err
	}

	data, err := marsh.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = p.out.Write(data)

	return err
}
