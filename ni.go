package ni

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/hasher"
	"github.com/tarantool/go-ni/namer"
)

// binderOptions contains configuration options for Binder instances.
type binderOptions struct {
	hasher    hasher.Hasher
	capacity  int
	authority string
	logger    *zap.Logger
}

// Option is a function that configures Binder options.
type Option func(*binderOptions)

// WithHasher sets the SHA-256 primitive used to hash buffers.
func WithHasher(h hasher.Hasher) Option {
	return func(opts *binderOptions) {
		opts.hasher = h
	}
}

// WithCapacity sets the maximum length of a produced name in bytes.
func WithCapacity(capacity int) Option {
	return func(opts *binderOptions) {
		opts.capacity = capacity
	}
}

// WithDefaultAuthority sets the authority used by MapNameToWellKnown for
// names without one.
func WithDefaultAuthority(authority string) Option {
	return func(opts *binderOptions) {
		opts.authority = authority
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *binderOptions) {
		opts.logger = logger
	}
}

// Binder binds buffers to names. It has no mutable state and is safe for
// concurrent use.
type Binder struct {
	hasher    hasher.Hasher
	capacity  int
	authority string
	logger    *zap.Logger
}

// New creates a new Binder with the given options.
func New(opts ...Option) Binder {
	options := binderOptions{
		hasher:    hasher.NewSHA256Hasher(),
		capacity:  namer.Capacity,
		authority: "",
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&options)
	}

	return Binder{
		hasher:    options.hasher,
		capacity:  options.capacity,
		authority: options.authority,
		logger:    options.logger,
	}
}

var defaultBinder = New()

// MakeName completes the template with the digest of buf using the default Binder.
func MakeName(template string, buf []byte) (string, error) {
	return defaultBinder.MakeName(template, buf)
}

// CheckName checks whether name matches buf using the default Binder.
func CheckName(name string, buf []byte) (MatchResult, error) {
	return defaultBinder.CheckName(name, buf)
}

// MakeWellKnown completes a .well-known URL template using the default Binder.
func MakeWellKnown(template string, buf []byte) (string, error) {
	return defaultBinder.MakeWellKnown(template, buf)
}

// MapNameToWellKnown maps an ni name to its .well-known URL using the default Binder.
func MapNameToWellKnown(name string) (string, error) {
	return defaultBinder.MapNameToWellKnown(name)
}

// Algorithms returns the supported algorithms in evaluation order.
func Algorithms() []algorithm.Entry {
	return algorithm.Entries()
}

// resolve validates the scheme and finds the requested algorithm.
func (b Binder) resolve(name string) (namer.Scheme, algorithm.Resolution, error) {
	scheme, err := namer.ParseScheme(name)
	if err != nil {
		return 0, algorithm.Resolution{}, err
	}

	res, err := algorithm.Resolve(name)
	if errors.Is(err, algorithm.ErrNotFound) {
		return 0, algorithm.Resolution{}, errUnknownAlgorithm(name)
	} else if err != nil {
		return 0, algorithm.Resolution{}, err
	}

	return scheme, res, nil
}

// digest hashes buf and truncates the result for the entry.
func (b Binder) digest(entry algorithm.Entry, buf []byte) ([]byte, error) {
	sum, err := b.hasher.Hash(buf)
	if err != nil {
		return nil, err
	}

	const expected = algorithm.FullBits / 8
	if len(sum) != expected {
		return nil, DigestLengthError{Hasher: b.hasher.Name(), Expected: expected, Got: len(sum)}
	}

	return sum[:entry.Bytes()], nil
}

// nihDigest returns the hex digest and its check digit.
func nihDigest(truncated []byte) (string, byte, error) {
	digits := codec.Hex(truncated)

	check, err := codec.LuhnMod16(digits)
	if err != nil {
		return "", 0, err
	}

	return digits, check, nil
}

// encode returns the digest field text for the scheme.
func encode(scheme namer.Scheme, truncated []byte) (string, error) {
	if scheme == namer.SchemeNIH {
		digits, check, err := nihDigest(truncated)
		if err != nil {
			return "", err
		}

		return digits + ";" + string(check), nil
	}

	return codec.Base64URL(truncated), nil
}
