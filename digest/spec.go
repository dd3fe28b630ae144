package digest

import (
	"errors"
	"strconv"
	"strings"
)

const bitsPerByte = 8

// Params are the parsed parts of a "<family>-<bits>[-<truncated-bits>]" spec.
type Params struct {
	Family        string
	Bits          int
	TruncatedBits int
}

// String returns the canonical spec, always with the truncated length.
func (p Params) String() string {
	return p.Family + "-" + strconv.Itoa(p.Bits) + "-" + strconv.Itoa(p.TruncatedBits)
}

// Bytes returns the length of the full digest in bytes.
func (p Params) Bytes() int {
	return p.Bits / bitsPerByte
}

// TruncatedBytes returns the length of the encoded digest in bytes.
func (p Params) TruncatedBytes() int {
	return p.TruncatedBits / bitsPerByte
}

// ParseAlgorithm parses an algorithm spec such as "sha-256", "sha-256-32" or
// "blake2b-512-128". The family is the text before the first '-'; bits and
// truncated bits are decimal multiples of 8. The truncated length defaults to
// the full length. Whether the family is known is not checked here.
func ParseAlgorithm(spec string) (Params, error) {
	family, rest, found := strings.Cut(spec, "-")
	switch {
	case !found:
		return Params{}, errSpec(spec, "missing '-'")
	case family == "":
		return Params{}, errSpec(spec, "empty family")
	}

	bitsText, truncText, hasTrunc := strings.Cut(rest, "-")

	bits, err := parseBits(bitsText)
	if err != nil {
		return Params{}, errSpec(spec, "bits: "+err.Error())
	}

	truncated := bits

	if hasTrunc {
		truncated, err = parseBits(truncText)
		if err != nil {
			return Params{}, errSpec(spec, "truncated bits: "+err.Error())
		}

		if truncated > bits {
			return Params{}, errSpec(spec, "truncated bits exceed bits")
		}
	}

	return Params{
		Family:        family,
		Bits:          bits,
		TruncatedBits: truncated,
	}, nil
}

var (
	errBitsEmpty       = errors.New("empty")
	errBitsNotNumber   = errors.New("not a number")
	errBitsRange       = errors.New("out of range")
	errBitsNotPositive = errors.New("must be positive")
	errBitsNotMultiple = errors.New("not a multiple of 8")
)

func parseBits(text string) (int, error) {
	if text == "" {
		return 0, errBitsEmpty
	}

	for i := range len(text) {
		if text[i] < '0' || text[i] > '9' {
			return 0, errBitsNotNumber
		}
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, errBitsRange
	}

	switch {
	case value == 0:
		return 0, errBitsNotPositive
	case value%bitsPerByte != 0:
		return 0, errBitsNotMultiple
	}

	return value, nil
}

// FileComponent returns the last path segment of a URL: the text after the
// last '/' up to the first of ";?#". For
// "http://example.com/.well-known/ni/sha-256-32?x" it is "sha-256-32".
func FileComponent(url string) (string, error) {
	end := strings.IndexAny(url, ";?#")
	if end < 0 {
		end = len(url)
	}

	start := strings.LastIndexByte(url[:end], '/') + 1

	if start == end {
		return "", ErrEmptyComponent
	}

	return url[start:end], nil
}
