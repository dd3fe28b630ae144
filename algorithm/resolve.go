package algorithm

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrUnknownAlgorithm is returned when no table entry matches.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
	// ErrNotFound is returned by Resolve when the name carries no algorithm it can use.
	ErrNotFound = errors.New("algorithm not found in name")
)

const (
	niPrefix  = "ni:"
	nihPrefix = "nih:"

	minNameLen = 4
)

// Kind tells how the algorithm was found inside a name.
type Kind int

const (
	// ByToken means the token text is present verbatim.
	ByToken Kind = iota + 1
	// ByNumber means the single suite digit follows the scheme prefix.
	ByNumber
)

// String returns string representation of the kind.
func (k Kind) String() string {
	switch k {
	case ByToken:
		return "ByToken"
	case ByNumber:
		return "ByNumber"
	default:
		return "Kind[" + strconv.Itoa(int(k)) + "]"
	}
}

// Resolution is the result of Resolve.
type Resolution struct {
	Kind  Kind
	Entry Entry
}

// Written returns the text that names the algorithm in the name: either the
// token or the single suite digit.
func (r Resolution) Written() string {
	if r.Kind == ByNumber {
		return strconv.Itoa(r.Entry.Suite)
	}

	return r.Entry.Token
}

// Resolve finds the algorithm requested by an ni or nih name. Tokens are
// tried first in table order, then the numeric form where the suite digit
// immediately follows the scheme prefix.
func Resolve(name string) (Resolution, error) {
	if len(name) < minNameLen {
		return Resolution{}, ErrNotFound
	}

	if !strings.HasPrefix(name, niPrefix) && !strings.HasPrefix(name, nihPrefix) {
		return Resolution{}, ErrNotFound
	}

	if entry, ok := Lookup(name); ok {
		return Resolution{Kind: ByToken, Entry: entry}, nil
	}

	for _, entry := range table {
		if entry.Suite > maxNumericSuite {
			continue
		}

		digit := strconv.Itoa(entry.Suite)
		if strings.HasPrefix(name, niPrefix+digit) || strings.HasPrefix(name, nihPrefix+digit) {
			return Resolution{Kind: ByNumber, Entry: entry}, nil
		}
	}

	return Resolution{}, ErrNotFound
}
