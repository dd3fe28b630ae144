// Package namer parses ni, nih and .well-known names: it detects the scheme,
// locates the digest field that follows the algorithm and splices a new
// digest into a name while leaving the rest of it untouched.
package namer

import (
	"strconv"
	"strings"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/codec"
)

// Capacity is the default maximum length of a name in bytes.
const Capacity = 4096

const (
	niPrefix  = "ni:"
	nihPrefix = "nih:"

	minNameLen = 4

	fieldSeparator = ';'
)

// Scheme represents the scheme of a name.
type Scheme int

const (
	// SchemeNI is the "ni:" scheme with a base64url digest.
	SchemeNI Scheme = iota + 1
	// SchemeNIH is the "nih:" scheme with a hex digest and a check digit.
	SchemeNIH
)

// String returns string representation of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeNI:
		return "ni"
	case SchemeNIH:
		return "nih"
	default:
		return "Scheme[" + strconv.Itoa(int(s)) + "]"
	}
}

// Prefix returns the scheme prefix including the colon.
func (s Scheme) Prefix() string {
	switch s {
	case SchemeNI:
		return niPrefix
	case SchemeNIH:
		return nihPrefix
	default:
		return ""
	}
}

// ParseScheme returns the scheme of the name.
func ParseScheme(name string) (Scheme, error) {
	switch {
	case len(name) < minNameLen:
		return 0, errInvalidName(name, "too short")
	case strings.HasPrefix(name, niPrefix):
		return SchemeNI, nil
	case strings.HasPrefix(name, nihPrefix):
		return SchemeNIH, nil
	default:
		return 0, errInvalidName(name, "scheme must be ni: or nih:")
	}
}

// Field describes where the algorithm and the digest are inside a name.
type Field struct {
	AlgStart int // Offset of the token or the suite digit.
	AlgEnd   int // Offset right after the token or the suite digit.
	Start    int // Offset of the first digest character.
	End      int // Offset right after the digest (and nih check digit).

	Digest     string               // Digest characters present in the name.
	CheckDigit option.Generic[byte] // Check digit present in a nih name.
}

// Locate finds the digest field of the name for the resolved algorithm.
//
// The field starts right after the token (or the suite digit of the numeric
// form), skipping one optional ';'. For ni names it runs over the base64url
// alphabet; for nih names it runs over hex digits followed by an optional
// ";<check digit>". A dangling ';' that ends a nih name belongs to the field.
func Locate(name string, scheme Scheme, res algorithm.Resolution) (Field, error) {
	var field Field

	switch res.Kind {
	case algorithm.ByToken:
		idx := strings.Index(name, res.Entry.Token)
		if idx < 0 {
			return Field{}, errInvalidName(name, "algorithm "+res.Entry.Token+" not present")
		}

		field.AlgStart = idx
		field.AlgEnd = idx + len(res.Entry.Token)
	case algorithm.ByNumber:
		field.AlgStart = len(scheme.Prefix())
		field.AlgEnd = field.AlgStart + 1

		if !strings.HasPrefix(name[field.AlgStart:], res.Written()) {
			return Field{}, errInvalidName(name, "suite digit not after scheme")
		}
	default:
		return Field{}, errInvalidName(name, "unresolved algorithm")
	}

	pos := field.AlgEnd
	if pos < len(name) && name[pos] == fieldSeparator {
		pos++
	}

	field.Start = pos
	field.CheckDigit = option.None[byte]()

	switch scheme {
	case SchemeNI:
		field.End = scan(name, pos, codec.IsBase64URL)
	case SchemeNIH:
		field.End = scan(name, pos, codec.IsHex)

		if field.End+1 < len(name) && name[field.End] == fieldSeparator {
			field.CheckDigit = option.Some(name[field.End+1])
			field.Digest = name[field.Start:field.End]
			field.End += 2

			return field, nil
		}

		if field.End+1 == len(name) && name[field.End] == fieldSeparator {
			field.Digest = name[field.Start:field.End]
			field.End++

			return field, nil
		}
	default:
		return Field{}, errInvalidName(name, "unknown scheme")
	}

	field.Digest = name[field.Start:field.End]

	return field, nil
}

func scan(s string, pos int, accept func(byte) bool) int {
	for pos < len(s) && accept(s[pos]) {
		pos++
	}

	return pos
}

// Splice replaces the algorithm and digest field of the name with written,
// ';' and encoded. Everything before the algorithm and after the old field
// is kept as is; the old and the new field may differ in length.
func Splice(name string, field Field, written, encoded string) string {
	var b strings.Builder

	b.Grow(len(name) - (field.End - field.AlgStart) + len(written) + 1 + len(encoded))
	b.WriteString(name[:field.AlgStart])
	b.WriteString(written)
	b.WriteByte(fieldSeparator)
	b.WriteString(encoded)
	b.WriteString(name[field.End:])

	return b.String()
}

// SpliceWellKnown inserts "/" and encoded at offset at (right after the
// algorithm token) of a .well-known URL.
func SpliceWellKnown(url string, at int, encoded string) string {
	return url[:at] + "/" + encoded + url[at:]
}

// CheckCapacity returns OverflowError when s is longer than capacity.
func CheckCapacity(s string, capacity int) error {
	if len(s) > capacity {
		return OverflowError{Length: len(s), Capacity: capacity}
	}

	return nil
}

// SplitNI splits an "ni:/..." name into its authority and the path that
// follows it (without the leading slash). The authority is empty for names
// like "ni:///sha-256;...".
func SplitNI(name string) (string, string, error) {
	if !strings.HasPrefix(name, niPrefix+"/") {
		return "", "", errInvalidName(name, "must start with ni:/")
	}

	rest := name[len(niPrefix):]

	authority, path := "", rest[1:]
	if strings.HasPrefix(rest, "//") {
		authority, path, _ = strings.Cut(rest[2:], "/")
	}

	return authority, path, nil
}
