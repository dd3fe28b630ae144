package ni

import (
	"strings"

	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/namer"
)

// ToNih converts an ni name into the equivalent "nih:<alg>;<hex>;<check>"
// name. ni names with an authority or a query can't be expressed as nih and
// are rejected. nih names are returned unchanged.
func ToNih(name string) (string, error) {
	scheme, res, field, err := parseComplete(name)
	if err != nil {
		return "", err
	}

	if scheme == namer.SchemeNIH {
		return name, nil
	}

	if strings.HasPrefix(name, "ni://") {
		authority, _, _ := namer.SplitNI(name)
		if authority != "" {
			return "", errMalformedName(name, "nih names carry no authority")
		}
	}

	raw, err := decodeField(name, res.Entry, field, codec.DecodeBase64URL)
	if err != nil {
		return "", err
	}

	digits, check, err := nihDigest(raw)
	if err != nil {
		return "", err
	}

	return "nih:" + res.Entry.Token + ";" + digits + ";" + string(check), nil
}

// ToNi converts a nih name into the equivalent "ni:///<alg>;<base64url>"
// name; the check digit is dropped. ni names are returned unchanged.
func ToNi(name string) (string, error) {
	scheme, res, field, err := parseComplete(name)
	if err != nil {
		return "", err
	}

	if scheme == namer.SchemeNI {
		return name, nil
	}

	raw, err := decodeField(name, res.Entry, field, codec.DecodeHex)
	if err != nil {
		return "", err
	}

	return "ni:///" + res.Entry.Token + ";" + codec.Base64URL(raw), nil
}

// parseComplete parses a name that already carries a digest and nothing
// after it.
func parseComplete(name string) (namer.Scheme, algorithm.Resolution, namer.Field, error) {
	scheme, res, err := defaultBinder.resolve(name)
	if err != nil {
		return 0, algorithm.Resolution{}, namer.Field{}, err
	}

	field, err := namer.Locate(name, scheme, res)
	if err != nil {
		return 0, algorithm.Resolution{}, namer.Field{}, err
	}

	if field.Digest == "" {
		return 0, algorithm.Resolution{}, namer.Field{}, errMalformedName(name, "no digest")
	}

	if field.End != len(name) {
		return 0, algorithm.Resolution{}, namer.Field{}, errMalformedName(name, "unexpected text after digest")
	}

	return scheme, res, field, nil
}

func decodeField(
	name string,
	entry algorithm.Entry,
	field namer.Field,
	decode func(string) ([]byte, error),
) ([]byte, error) {
	raw, err := decode(field.Digest)
	if err != nil {
		return nil, errMalformedName(name, err.Error())
	}

	if len(raw) != entry.Bytes() {
		return nil, errMalformedName(name, "digest length doesn't match "+entry.Token)
	}

	return raw, nil
}
