package ni

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tarantool/go-ni/namer"
)

// MakeName completes the template with the digest of buf.
//
// The template names the scheme and the algorithm, e.g.
// "ni://example.com/sha-256;?ct=text/plain", "nih:sha-256-32;" or "nih:3;".
// The digest field after the algorithm is replaced, everything else is kept
// byte for byte. An ni digest is base64url encoded, a nih digest is hex
// followed by ';' and the Luhn mod 16 check digit.
func (b Binder) MakeName(template string, buf []byte) (string, error) {
	scheme, res, err := b.resolve(template)
	if err != nil {
		return "", err
	}

	field, err := namer.Locate(template, scheme, res)
	if err != nil {
		return "", err
	}

	truncated, err := b.digest(res.Entry, buf)
	if err != nil {
		return "", fmt.Errorf("failed to compute digest: %w", err)
	}

	encoded, err := encode(scheme, truncated)
	if err != nil {
		return "", fmt.Errorf("failed to encode digest: %w", err)
	}

	name := namer.Splice(template, field, res.Written(), encoded)

	err = namer.CheckCapacity(name, b.capacity)
	if err != nil {
		return "", err
	}

	b.logger.Debug("name made",
		zap.String("scheme", scheme.String()),
		zap.String("algorithm", res.Entry.Token),
		zap.Stringer("kind", res.Kind),
		zap.Int("size", len(buf)),
		zap.String("name", name))

	return name, nil
}
