package digest_test

import (
	"bytes"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-ni/digest"
)

const helloSHA256 = "LPJNul-wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ"

func newReady(t *testing.T, spec string) *digest.Session {
	t.Helper()

	session := digest.New(digest.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, session.Init())
	require.NoError(t, session.SelectAlgorithm(spec))

	return session
}

func TestSession(t *testing.T) {
	t.Parallel()

	session := newReady(t, "sha-256")
	assert.Equal(t, digest.PhaseReady, session.Phase())

	require.NoError(t, session.Update([]byte("hel")))
	require.NoError(t, session.Update([]byte("lo")))
	assert.Equal(t, digest.PhaseUpdated, session.Phase())

	out, status, err := session.Finalize()
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, out)
	assert.Equal(t, digest.StatusOK, status)
	assert.Equal(t, digest.PhaseFinalized, session.Phase())

	again, status, err := session.Finalize()
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Equal(t, digest.StatusAlreadyFinalized, status)

	got, err := session.Digest()
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, got)

	ok, err := session.CheckDigest(helloSHA256)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = session.CheckDigest(helloSHA256[:42])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Algorithms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec string
		in   string
		out  string
	}{
		{"sha-256", "hello", helloSHA256},
		{"sha-256-32", "hello", "LPJNug"},
		{"sha-256-128", "hello", "LPJNul-wow4m6Dsqxbning"},
		{"sha-224", "hello", "6gmunMZ2jFD87pA-0FRVblv8g0eQfxJZiqJBkw"},
		{"sha-384-64", "hello", "WeF0h3dEjGk"},
		{"sha-512-128", "hello", "m3HSJL1i83hdltRq0-o9cw"},
		{"sha3-256", "abc", "Ophdp0_iJbIEXBcta9OQvYVfCG4-nVJbRr_iRRFDFTI"},
		{"blake2b-256", "", "DldRwCblQ7Loqy6wYJnaodHl30d3j3eH-qtFzfEv46g"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			session := newReady(t, tt.spec)
			require.NoError(t, session.Update([]byte(tt.in)))

			out, status, err := session.Finalize()
			require.NoError(t, err)
			assert.Equal(t, digest.StatusOK, status)
			assert.Equal(t, tt.out, out)
		})
	}
}

// Feeding a buffer in arbitrary chunks gives the digest of the whole buffer.
func TestSession_Chunked(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4)) //nolint:gosec // Deterministic test data.

	buf := make([]byte, 10000)
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}

	whole := newReady(t, "sha-256-96")
	require.NoError(t, whole.Update(buf))

	expected, _, err := whole.Finalize()
	require.NoError(t, err)

	for range 8 {
		session := newReady(t, "sha-256-96")

		rest := buf
		for len(rest) > 0 {
			n := min(len(rest), 1+rng.IntN(700))
			require.NoError(t, session.Update(rest[:n]))
			rest = rest[n:]
		}

		out, _, err := session.Finalize()
		require.NoError(t, err)
		assert.Equal(t, expected, out)
	}

	writer := newReady(t, "sha-256-96")

	_, err = io.CopyBuffer(writer, bytes.NewReader(buf), make([]byte, 333))
	require.NoError(t, err)

	out, _, err := writer.Finalize()
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestSession_Reselect(t *testing.T) {
	t.Parallel()

	session := newReady(t, "sha-512")
	require.NoError(t, session.Update([]byte("discarded")))

	require.NoError(t, session.SelectAlgorithm("sha-256"))
	assert.Equal(t, digest.PhaseReady, session.Phase())
	require.NoError(t, session.Update([]byte("hello")))

	out, status, err := session.Finalize()
	require.NoError(t, err)
	assert.Equal(t, digest.StatusOK, status)
	assert.Equal(t, helloSHA256, out)

	// Selecting again after finalizing starts a new digest.
	require.NoError(t, session.SelectAlgorithm("sha-256-32"))

	_, err = session.Digest()
	require.ErrorIs(t, err, digest.ErrSessionState)

	require.NoError(t, session.Update([]byte("hello")))

	out, status, err = session.Finalize()
	require.NoError(t, err)
	assert.Equal(t, digest.StatusOK, status)
	assert.Equal(t, "LPJNug", out)
}

func TestSession_SelectFailureKeepsState(t *testing.T) {
	t.Parallel()

	session := newReady(t, "sha-256")
	require.NoError(t, session.Update([]byte("hel")))

	err := session.SelectAlgorithm("md5-128")
	require.ErrorIs(t, err, digest.ErrUnknownAlgorithm)

	err = session.SelectAlgorithm("sha-257")
	require.ErrorIs(t, err, digest.ErrInvalidAlgorithmSpec)

	assert.Equal(t, digest.PhaseUpdated, session.Phase())
	assert.Equal(t, 256, session.Params().Bits)

	require.NoError(t, session.Update([]byte("lo")))

	out, _, err := session.Finalize()
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, out)
}

func TestSession_StateErrors(t *testing.T) {
	t.Parallel()

	session := digest.New()
	assert.Equal(t, digest.PhaseUninitialized, session.Phase())

	err := session.Update([]byte("x"))
	require.ErrorIs(t, err, digest.ErrSessionState)

	_, _, err = session.Finalize()
	require.ErrorIs(t, err, digest.ErrSessionState)

	_, err = session.Digest()
	require.ErrorIs(t, err, digest.ErrSessionState)

	_, err = session.CheckDigest("")
	require.ErrorIs(t, err, digest.ErrSessionState)

	require.NoError(t, session.Init())

	err = session.Init()
	require.ErrorIs(t, err, digest.ErrSessionState)

	var stateErr digest.StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "init", stateErr.Op)
	assert.Equal(t, digest.PhaseInitialized, stateErr.Phase)
	assert.Equal(t, "init is not allowed in phase initialized", stateErr.Error())

	n, err := session.Write([]byte("x"))
	require.ErrorIs(t, err, digest.ErrSessionState)
	assert.Zero(t, n)

	require.NoError(t, session.SelectAlgorithm("sha-256"))

	_, _, err = session.Finalize()
	require.NoError(t, err)

	err = session.Update([]byte("late"))
	require.ErrorIs(t, err, digest.ErrSessionState)
}

func TestSession_SelectWithoutInit(t *testing.T) {
	t.Parallel()

	session := digest.New()
	require.NoError(t, session.SelectAlgorithm("sha-256-32"))

	n, err := session.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	out, _, err := session.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "LPJNug", out)

	// Init is only valid for a new session.
	require.ErrorIs(t, session.Init(), digest.ErrSessionState)
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uninitialized", digest.PhaseUninitialized.String())
	assert.Equal(t, "ready", digest.PhaseReady.String())
	assert.Equal(t, "Phase[42]", digest.Phase(42).String())
	assert.Equal(t, "already finalized", digest.StatusAlreadyFinalized.String())
	assert.Equal(t, "Status[7]", digest.Status(7).String())
}
