// Package algorithm holds the table of hash algorithms that may appear in
// ni and nih names and the rules used to find one inside a name.
package algorithm

import (
	"strconv"
	"strings"
)

// Token values of the supported hash algorithms.
const (
	TokenSHA256     = "sha-256"
	TokenSHA256T32  = "sha-256-32"
	TokenSHA256T64  = "sha-256-64"
	TokenSHA256T96  = "sha-256-96"
	TokenSHA256T120 = "sha-256-120"
	TokenSHA256T128 = "sha-256-128"
)

// FullBits is the output length of the underlying SHA-256 primitive.
const FullBits = 256

// maxNumericSuite is the largest suite id expressible by a single digit.
const maxNumericSuite = 9

// Entry is a single row of the algorithm table.
type Entry struct {
	Token string // Name of the algorithm as written in names.
	Suite int    // Suite id used by the numeric form.
	Bits  int    // Length of the (truncated) digest in bits.
}

// Bytes returns the truncated digest length in bytes.
func (e Entry) Bytes() int {
	return e.Bits / 8
}

// EncodedLen returns the length of the base64url (unpadded) encoding of the
// truncated digest.
func (e Entry) EncodedLen() int {
	n := e.Bytes()

	return (n*8 + 5) / 6
}

// String returns human-readable representation of the entry.
func (e Entry) String() string {
	return e.Token + " (" + strconv.Itoa(e.Suite) + ")"
}

// The full-length token must stay last: it is a prefix of every other token.
var table = [...]Entry{
	{Token: TokenSHA256T32, Suite: 6, Bits: 32},
	{Token: TokenSHA256T64, Suite: 5, Bits: 64},
	{Token: TokenSHA256T96, Suite: 4, Bits: 96},
	{Token: TokenSHA256T120, Suite: 3, Bits: 120},
	{Token: TokenSHA256T128, Suite: 2, Bits: 128},
	{Token: TokenSHA256, Suite: 1, Bits: 256},
}

// Entries returns a copy of the table in evaluation order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])

	return out
}

// Lookup returns the first entry (in table order) whose token occurs
// anywhere in text.
func Lookup(text string) (Entry, bool) {
	for _, entry := range table {
		if strings.Contains(text, entry.Token) {
			return entry, true
		}
	}

	return Entry{}, false
}

// EntryByToken returns the entry with exactly the given token.
func EntryByToken(token string) (Entry, bool) {
	for _, entry := range table {
		if entry.Token == token {
			return entry, true
		}
	}

	return Entry{}, false
}

// BySuite returns the entry with the given suite id.
func BySuite(suite int) (Entry, bool) {
	for _, entry := range table {
		if entry.Suite == suite {
			return entry, true
		}
	}

	return Entry{}, false
}
