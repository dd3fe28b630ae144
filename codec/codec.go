// Package codec implements the text encodings used for digests in names:
// URL-safe base64 without padding, lower-case hex and the Luhn mod 16 check
// digit computed over hex digits.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer is returned when the output buffer is too small.
	ErrShortBuffer = errors.New("output buffer too small")
	// ErrInvalidHexDigit is returned for a character outside of [0-9a-fA-F].
	ErrInvalidHexDigit = errors.New("invalid hex digit")
	// ErrInvalidEncoding is returned when a digest text can't be decoded.
	ErrInvalidEncoding = errors.New("invalid digest encoding")
)

const hexDigits = "0123456789abcdef"

// Base64URL encodes b with the base64url alphabet and strips the padding.
func Base64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBase64URL decodes an unpadded base64url string.
func DecodeBase64URL(s string) ([]byte, error) {
	out, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	return out, nil
}

// Hex returns the lower-case hex encoding of b.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexInto writes the lower-case hex encoding of b into dst and returns the
// number of bytes written. dst must hold at least 2*len(b) bytes.
func HexInto(dst, b []byte) (int, error) {
	if len(dst) < hex.EncodedLen(len(b)) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, hex.EncodedLen(len(b)), len(dst))
	}

	return hex.Encode(dst, b), nil
}

// DecodeHex decodes a hex string.
func DecodeHex(s string) ([]byte, error) {
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	return out, nil
}

// IsBase64URL reports whether c belongs to the base64url alphabet.
func IsBase64URL(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	default:
		return c == '-' || c == '_'
	}
}

// IsHex reports whether c is a hex digit of either case.
func IsHex(c byte) bool {
	_, ok := hexValue(c)

	return ok
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
