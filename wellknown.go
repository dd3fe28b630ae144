package ni

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/namer"
)

const wellKnownPath = "/.well-known/ni/"

// MakeWellKnown completes a .well-known URL template with the digest of buf,
// e.g. "http://example.com/.well-known/ni/sha-256/" becomes
// "http://example.com/.well-known/ni/sha-256/<digest>/". The digest is always
// base64url encoded and is inserted after the algorithm token and a '/'; the
// rest of the URL is kept.
func (b Binder) MakeWellKnown(template string, buf []byte) (string, error) {
	if !strings.HasPrefix(template, "http://") && !strings.HasPrefix(template, "https://") {
		return "", errMalformedName(template, "must be an http or https URL")
	}

	entry, ok := algorithm.Lookup(template)
	if !ok {
		return "", errUnknownAlgorithm(template)
	}

	truncated, err := b.digest(entry, buf)
	if err != nil {
		return "", fmt.Errorf("failed to compute digest: %w", err)
	}

	at := strings.Index(template, entry.Token) + len(entry.Token)
	url := namer.SpliceWellKnown(template, at, codec.Base64URL(truncated))

	err = namer.CheckCapacity(url, b.capacity)
	if err != nil {
		return "", err
	}

	b.logger.Debug("well-known url made",
		zap.String("algorithm", entry.Token),
		zap.String("url", url))

	return url, nil
}

// MapNameToWellKnown rewrites "ni://<authority>/<alg>;<digest>[?query]" into
// "http://<authority>/.well-known/ni/<alg>/<digest>[?query]". No hashing is
// done. Names without an authority get the default authority of the Binder.
func (b Binder) MapNameToWellKnown(name string) (string, error) {
	authority, path, err := namer.SplitNI(name)
	if err != nil {
		return "", err
	}

	_, err = algorithm.Resolve(name)
	if err != nil {
		return "", errUnknownAlgorithm(name)
	}

	entry, ok := algorithm.Lookup(path)
	if !ok {
		return "", errUnknownAlgorithm(name)
	}

	if !strings.HasPrefix(path, entry.Token) {
		return "", errMalformedName(name, "algorithm must follow the authority")
	}

	rest := strings.TrimPrefix(path[len(entry.Token):], ";")

	if authority == "" {
		authority = b.authority
	}

	url := "http://" + authority + wellKnownPath + entry.Token + "/" + rest

	err = namer.CheckCapacity(url, b.capacity)
	if err != nil {
		return "", err
	}

	return url, nil
}
