// Package binform implements the binary form of named digests: a suite id
// octet followed by the truncated SHA-256 digest, and its multihash
// counterpart.
package binform

import (
	"errors"
	"fmt"

	"github.com/multiformats/go-multihash"

	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/hasher"
	"github.com/tarantool/go-ni/namer"
)

// ErrInvalidBinaryForm is returned for a binary form that can't be decoded.
var ErrInvalidBinaryForm = errors.New("invalid binary form")

const (
	suiteMask    = 0x3f
	reservedMask = 0xc0
)

// Encode hashes buf and returns its binary form for the suite.
func Encode(suite int, buf []byte) ([]byte, error) {
	return EncodeWith(hasher.NewSHA256Hasher(), suite, buf)
}

// EncodeWith is Encode with the given SHA-256 primitive.
func EncodeWith(h hasher.Hasher, suite int, buf []byte) ([]byte, error) {
	entry, ok := algorithm.BySuite(suite)
	if !ok {
		return nil, fmt.Errorf("%w: suite %d", algorithm.ErrUnknownAlgorithm, suite)
	}

	sum, err := h.Hash(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to hash: %w", err)
	}

	if len(sum) < entry.Bytes() {
		return nil, fmt.Errorf("%w: %s returned %d bytes", hasher.ErrPrimitiveFailure, h.Name(), len(sum))
	}

	return pack(entry, sum[:entry.Bytes()]), nil
}

// Decode splits a binary form into its table entry and truncated digest.
func Decode(b []byte) (algorithm.Entry, []byte, error) {
	if len(b) == 0 {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: empty", ErrInvalidBinaryForm)
	}

	if b[0]&reservedMask != 0 {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: reserved bits set in 0x%02x", ErrInvalidBinaryForm, b[0])
	}

	suite := int(b[0] & suiteMask)

	entry, ok := algorithm.BySuite(suite)
	if !ok {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: suite %d", algorithm.ErrUnknownAlgorithm, suite)
	}

	digest := b[1:]
	if len(digest) != entry.Bytes() {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: %s needs %d digest bytes, got %d",
			ErrInvalidBinaryForm, entry.Token, entry.Bytes(), len(digest))
	}

	return entry, digest, nil
}

// FromName returns the binary form of the digest carried by an ni or nih
// name. The name isn't hashed again.
func FromName(name string) ([]byte, error) {
	scheme, err := namer.ParseScheme(name)
	if err != nil {
		return nil, err
	}

	res, err := algorithm.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", algorithm.ErrUnknownAlgorithm, err)
	}

	field, err := namer.Locate(name, scheme, res)
	if err != nil {
		return nil, err
	}

	var digest []byte

	switch scheme {
	case namer.SchemeNIH:
		digest, err = codec.DecodeHex(field.Digest)
	default:
		digest, err = codec.DecodeBase64URL(field.Digest)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", namer.ErrMalformedName, err)
	}

	if len(digest) != res.Entry.Bytes() {
		return nil, fmt.Errorf("%w: %s needs %d digest bytes, got %d",
			namer.ErrMalformedName, res.Entry.Token, res.Entry.Bytes(), len(digest))
	}

	return pack(res.Entry, digest), nil
}

func pack(entry algorithm.Entry, digest []byte) []byte {
	out := make([]byte, 0, 1+len(digest))
	out = append(out, byte(entry.Suite))

	return append(out, digest...)
}

// Multihash wraps a (possibly truncated) digest of the entry into a sha2-256
// multihash.
func Multihash(entry algorithm.Entry, digest []byte) (multihash.Multihash, error) {
	if len(digest) != entry.Bytes() {
		return nil, fmt.Errorf("%w: %s needs %d digest bytes, got %d",
			ErrInvalidBinaryForm, entry.Token, entry.Bytes(), len(digest))
	}

	encoded, err := multihash.Encode(digest, multihash.SHA2_256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode multihash: %w", err)
	}

	return multihash.Multihash(encoded), nil
}

// MultihashString returns the base58 text of Multihash.
func MultihashString(entry algorithm.Entry, digest []byte) (string, error) {
	mh, err := Multihash(entry, digest)
	if err != nil {
		return "", err
	}

	return mh.B58String(), nil
}

// ParseMultihash decodes a base58 sha2-256 multihash back into the table
// entry matching its length and the digest.
func ParseMultihash(text string) (algorithm.Entry, []byte, error) {
	mh, err := multihash.FromB58String(text)
	if err != nil {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: %w", ErrInvalidBinaryForm, err)
	}

	decoded, err := multihash.Decode(mh)
	if err != nil {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: %w", ErrInvalidBinaryForm, err)
	}

	if decoded.Code != multihash.SHA2_256 {
		return algorithm.Entry{}, nil, fmt.Errorf("%w: multihash %s", algorithm.ErrUnknownAlgorithm, decoded.Name)
	}

	for _, entry := range algorithm.Entries() {
		if entry.Bytes() == decoded.Length {
			return entry, decoded.Digest, nil
		}
	}

	return algorithm.Entry{}, nil, fmt.Errorf("%w: no sha-256 truncation of %d bytes",
		algorithm.ErrUnknownAlgorithm, decoded.Length)
}
