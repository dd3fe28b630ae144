// Package digest implements an incremental digest session: select an
// algorithm by spec, stream data into it and finalize it into a truncated
// base64url digest that can later be retrieved or compared.
package digest

import (
	"fmt"
	"hash"
	"strconv"

	"github.com/tarantool/go-option"
	"go.uber.org/zap"

	"github.com/tarantool/go-ni/codec"
	"github.com/tarantool/go-ni/hasher"
)

// Phase is the state of a Session.
type Phase int

const (
	// PhaseUninitialized is the phase of a new Session.
	PhaseUninitialized Phase = iota
	// PhaseInitialized follows Init.
	PhaseInitialized
	// PhaseReady follows SelectAlgorithm.
	PhaseReady
	// PhaseUpdated follows the first Update.
	PhaseUpdated
	// PhaseFinalized follows Finalize.
	PhaseFinalized
)

// String returns string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitialized:
		return "initialized"
	case PhaseReady:
		return "ready"
	case PhaseUpdated:
		return "updated"
	case PhaseFinalized:
		return "finalized"
	default:
		return "Phase[" + strconv.Itoa(int(p)) + "]"
	}
}

// Status tells a first Finalize from a repeated one.
type Status int

const (
	// StatusOK means the digest was computed by this call.
	StatusOK Status = iota
	// StatusAlreadyFinalized means the cached digest was returned.
	StatusAlreadyFinalized
)

// String returns string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAlreadyFinalized:
		return "already finalized"
	default:
		return "Status[" + strconv.Itoa(int(s)) + "]"
	}
}

// sessionOptions contains configuration options for Session instances.
type sessionOptions struct {
	logger *zap.Logger
}

// Option is a function that configures Session options.
type Option func(*sessionOptions)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *sessionOptions) {
		opts.logger = logger
	}
}

// Session is an incremental digest computation. It is owned by one caller
// and must not be used concurrently.
type Session struct {
	phase  Phase
	params Params
	hash   hash.Hash
	digest option.Generic[string]
	logger *zap.Logger
}

// New creates a new uninitialized Session.
func New(opts ...Option) *Session {
	options := sessionOptions{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Session{
		phase:  PhaseUninitialized,
		params: Params{},
		hash:   nil,
		digest: option.None[string](),
		logger: options.logger,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Params returns the parameters of the selected algorithm.
func (s *Session) Params() Params {
	return s.params
}

// Init moves a new Session to PhaseInitialized. A Session can be
// initialized only once.
func (s *Session) Init() error {
	if s.phase != PhaseUninitialized {
		return errState("init", s.phase)
	}

	s.phase = PhaseInitialized

	return nil
}

// SelectAlgorithm parses spec, sets up a fresh primitive for it and moves the
// Session to PhaseReady from any phase, dropping previous data and digest.
// On error the Session is left as it was.
func (s *Session) SelectAlgorithm(spec string) error {
	params, err := ParseAlgorithm(spec)
	if err != nil {
		return err
	}

	h, err := hasher.NewDigest(params.Family, params.Bits)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	}

	s.params = params
	s.hash = h
	s.digest = option.None[string]()
	s.phase = PhaseReady

	s.logger.Debug("algorithm selected", zap.Stringer("params", params))

	return nil
}

// Update feeds p into the digest.
func (s *Session) Update(p []byte) error {
	if s.phase != PhaseReady && s.phase != PhaseUpdated {
		return errState("update", s.phase)
	}

	n, err := s.hash.Write(p)
	switch {
	case err != nil:
		return fmt.Errorf("%w: %w", hasher.ErrPrimitiveFailure, err)
	case n != len(p):
		return fmt.Errorf("%w: short write", hasher.ErrPrimitiveFailure)
	}

	s.phase = PhaseUpdated

	return nil
}

// Write implements io.Writer over Update.
func (s *Session) Write(p []byte) (int, error) {
	err := s.Update(p)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// Finalize computes the digest, truncates it and returns its base64url
// encoding. Once finalized, further calls return the same digest with
// StatusAlreadyFinalized.
func (s *Session) Finalize() (string, Status, error) {
	switch s.phase {
	case PhaseFinalized:
		return s.digest.UnwrapOr(""), StatusAlreadyFinalized, nil
	case PhaseReady, PhaseUpdated:
	default:
		return "", StatusOK, errState("finalize", s.phase)
	}

	sum := s.hash.Sum(nil)
	if len(sum) != s.params.Bytes() {
		return "", StatusOK, fmt.Errorf("%w: %s produced %d bytes, expected %d",
			hasher.ErrPrimitiveFailure, s.params.Family, len(sum), s.params.Bytes())
	}

	encoded := codec.Base64URL(sum[:s.params.TruncatedBytes()])

	s.digest = option.Some(encoded)
	s.hash = nil
	s.phase = PhaseFinalized

	s.logger.Debug("digest finalized",
		zap.Stringer("params", s.params),
		zap.String("digest", encoded))

	return encoded, StatusOK, nil
}

// Digest returns the finalized digest.
func (s *Session) Digest() (string, error) {
	if s.phase != PhaseFinalized {
		return "", errState("digest", s.phase)
	}

	return s.digest.UnwrapOr(""), nil
}

// CheckDigest reports whether candidate is exactly the finalized digest.
func (s *Session) CheckDigest(candidate string) (bool, error) {
	digest, err := s.Digest()
	if err != nil {
		return false, err
	}

	return candidate == digest, nil
}
