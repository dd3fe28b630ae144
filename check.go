package ni

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/namer"
)

// MatchResult is the outcome of a comparison between a name and a buffer.
// It is not an error: a comparison that could not run returns an error instead.
type MatchResult int

const (
	// MatchOK means the digest (and the nih check digit) match.
	MatchOK MatchResult = iota
	// MatchBad means the name doesn't match the buffer.
	MatchBad
	// MatchCheckDigitBad means the nih digest matches but the check digit is
	// missing or is not the one derived from it.
	MatchCheckDigitBad
	// MatchInputCheckDigitBad means the nih digest doesn't match but carries a
	// check digit consistent with itself: most likely a transcription slip.
	MatchInputCheckDigitBad
)

// String returns string representation of the result.
func (r MatchResult) String() string {
	switch r {
	case MatchOK:
		return "ok"
	case MatchBad:
		return "bad"
	case MatchCheckDigitBad:
		return "check digit bad"
	case MatchInputCheckDigitBad:
		return "input check digit bad"
	default:
		return "MatchResult[" + strconv.Itoa(int(r)) + "]"
	}
}

// CheckName checks whether name matches buf.
//
// ni names compare the base64url digest only and give MatchOK or MatchBad.
// nih names also look at the check digit, and hex digits compare without
// regard to case:
//   - digest matches, check digit right: MatchOK;
//   - digest matches, check digit wrong or absent: MatchCheckDigitBad;
//   - digest differs, but has the expected length and a check digit that is
//     right for it: MatchInputCheckDigitBad;
//   - otherwise: MatchBad.
func (b Binder) CheckName(name string, buf []byte) (MatchResult, error) {
	scheme, res, err := b.resolve(name)
	if err != nil {
		return MatchBad, err
	}

	field, err := namer.Locate(name, scheme, res)
	if err != nil {
		return MatchBad, err
	}

	truncated, err := b.digest(res.Entry, buf)
	if err != nil {
		return MatchBad, fmt.Errorf("failed to compute digest: %w", err)
	}

	var result MatchResult

	switch scheme {
	case namer.SchemeNIH:
		result, err = checkNIH(field, truncated)
		if err != nil {
			return MatchBad, err
		}
	default:
		result = MatchBad
		if field.Digest == codec.Base64URL(truncated) {
			result = MatchOK
		}
	}

	b.logger.Debug("name checked",
		zap.String("name", name),
		zap.String("algorithm", res.Entry.Token),
		zap.Stringer("result", result))

	return result, nil
}

func checkNIH(field namer.Field, truncated []byte) (MatchResult, error) {
	digits, check, err := nihDigest(truncated)
	if err != nil {
		return MatchBad, err
	}

	got := strings.ToLower(field.Digest)
	supplied := field.CheckDigit.IsSome()
	suppliedCheck := lowerHex(field.CheckDigit.UnwrapOr(0))

	if got == digits {
		if supplied && suppliedCheck == check {
			return MatchOK, nil
		}

		return MatchCheckDigitBad, nil
	}

	if supplied && len(got) == len(digits) && codec.ValidLuhnMod16(got, suppliedCheck) {
		return MatchInputCheckDigitBad, nil
	}

	return MatchBad, nil
}

func lowerHex(c byte) byte {
	if c >= 'A' && c <= 'F' {
		return c + ('a' - 'A')
	}

	return c
}
