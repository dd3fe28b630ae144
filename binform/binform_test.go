package binform_test

import (
	"crypto/sha256"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ni "github.com/tarantool/go-ni"
	"github.com/tarantool/go-ni/algorithm"
	"github.com/tarantool/go-ni/binform"
	"github.com/tarantool/go-ni/hasher"
	"github.com/tarantool/go-ni/internal/mocks"
)

var (
	hello    = []byte("hello")
	helloSum = sha256.Sum256(hello)
)

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := binform.Encode(6, hello)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0x2c, 0xf2, 0x4d, 0xba}, out)

	out, err = binform.Encode(1, hello)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x01}, helloSum[:]...), out)

	_, err = binform.Encode(7, hello)
	require.ErrorIs(t, err, algorithm.ErrUnknownAlgorithm)
}

func TestEncodeWith(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)
	h := mocks.NewHasherMock(mc).HashMock.Expect(hello).Return(helloSum[:], nil)

	out, err := binform.EncodeWith(h, 5, hello)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x05}, helloSum[:8]...), out)
}

func TestEncodeWith_negative(t *testing.T) {
	t.Parallel()

	t.Run("hasher error", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		h := mocks.NewHasherMock(mc).HashMock.Expect(hello).Return(nil, hasher.ErrPrimitiveFailure)

		_, err := binform.EncodeWith(h, 1, hello)
		require.ErrorIs(t, err, hasher.ErrPrimitiveFailure)
	})

	t.Run("short sum", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		h := mocks.NewHasherMock(mc).
			HashMock.Expect(hello).Return(helloSum[:20], nil).
			NameMock.Expect().Return("short")

		_, err := binform.EncodeWith(h, 1, hello)
		require.ErrorIs(t, err, hasher.ErrPrimitiveFailure)
		assert.Contains(t, err.Error(), "short returned 20 bytes")
	})

	t.Run("unknown suite", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)

		_, err := binform.EncodeWith(mocks.NewHasherMock(mc), 9, hello)
		require.ErrorIs(t, err, algorithm.ErrUnknownAlgorithm)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	for _, entry := range algorithm.Entries() {
		encoded, err := binform.Encode(entry.Suite, hello)
		require.NoError(t, err)
		assert.Len(t, encoded, 1+entry.Bytes())

		decoded, digest, err := binform.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, entry, decoded)
		assert.Equal(t, helloSum[:entry.Bytes()], digest)
	}
}

func TestDecode_negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		err  error
	}{
		{"empty", nil, binform.ErrInvalidBinaryForm},
		{"reserved bits", []byte{0x46, 0x2c, 0xf2, 0x4d, 0xba}, binform.ErrInvalidBinaryForm},
		{"unknown suite", []byte{0x0a, 0x00}, algorithm.ErrUnknownAlgorithm},
		{"short digest", []byte{0x06, 0x2c, 0xf2, 0x4d}, binform.ErrInvalidBinaryForm},
		{"long digest", []byte{0x06, 0x2c, 0xf2, 0x4d, 0xba, 0x5f}, binform.ErrInvalidBinaryForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := binform.Decode(tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"ni", "ni:///sha-256-32;LPJNug"},
		{"ni with authority and query", "ni://example.com/sha-256-32;LPJNug?ct=text"},
		{"nih", "nih:sha-256-32;2cf24dba;3"},
		{"nih numeric", "nih:6;2cf24dba;3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := binform.FromName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x06, 0x2c, 0xf2, 0x4d, 0xba}, out)
		})
	}
}

// The binary form of a made name equals the binary form of the buffer.
func TestFromName_MatchesEncode(t *testing.T) {
	t.Parallel()

	buf := []byte("binary form")

	for _, entry := range algorithm.Entries() {
		for _, template := range []string{"ni:///" + entry.Token + ";", "nih:" + entry.Token + ";"} {
			name, err := ni.MakeName(template, buf)
			require.NoError(t, err)

			fromName, err := binform.FromName(name)
			require.NoError(t, err)

			encoded, err := binform.Encode(entry.Suite, buf)
			require.NoError(t, err)

			assert.Equal(t, encoded, fromName, name)
		}
	}
}

func TestFromName_negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"not a name", "http://example.com/", ni.ErrMalformedName},
		{"unknown algorithm", "ni:///md5;abc", ni.ErrUnknownAlgorithm},
		{"no digest", "ni:///sha-256-32;", ni.ErrMalformedName},
		{"short digest", "nih:sha-256-32;2cf24d;b", ni.ErrMalformedName},
		{"odd hex", "nih:sha-256-32;2cf24db", ni.ErrMalformedName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := binform.FromName(tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMultihash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		out   string
	}{
		{algorithm.TokenSHA256, "QmRN6wdp1S2A5EtjW9A3M1vKSBuQQGcgvuhoMUoEz4iiT5"},
		{algorithm.TokenSHA256T32, "9yMTA1vq"},
		{algorithm.TokenSHA256T128, "kTLJjyEpBzxrYiphMPG8vm4h"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			entry, ok := algorithm.EntryByToken(tt.token)
			require.True(t, ok)

			mh, err := binform.Multihash(entry, helloSum[:entry.Bytes()])
			require.NoError(t, err)
			assert.Equal(t, byte(multihash.SHA2_256), mh[0])
			assert.Equal(t, byte(entry.Bytes()), mh[1])

			text, err := binform.MultihashString(entry, helloSum[:entry.Bytes()])
			require.NoError(t, err)
			assert.Equal(t, tt.out, text)

			parsed, digest, err := binform.ParseMultihash(text)
			require.NoError(t, err)
			assert.Equal(t, entry, parsed)
			assert.Equal(t, helloSum[:entry.Bytes()], digest)
		})
	}
}

func TestMultihash_negative(t *testing.T) {
	t.Parallel()

	entry, ok := algorithm.EntryByToken(algorithm.TokenSHA256T64)
	require.True(t, ok)

	_, err := binform.Multihash(entry, helloSum[:4])
	require.ErrorIs(t, err, binform.ErrInvalidBinaryForm)

	_, _, err = binform.ParseMultihash("not base58 0OIl")
	require.ErrorIs(t, err, binform.ErrInvalidBinaryForm)

	sha1, err := multihash.Encode(make([]byte, 20), multihash.SHA1)
	require.NoError(t, err)

	_, _, err = binform.ParseMultihash(multihash.Multihash(sha1).B58String())
	require.ErrorIs(t, err, algorithm.ErrUnknownAlgorithm)

	odd, err := multihash.Encode(make([]byte, 20), multihash.SHA2_256)
	require.NoError(t, err)

	_, _, err = binform.ParseMultihash(multihash.Multihash(odd).B58String())
	require.ErrorIs(t, err, algorithm.ErrUnknownAlgorithm)
}
