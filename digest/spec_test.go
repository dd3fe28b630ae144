package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-ni/digest"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec   string
		params digest.Params
	}{
		{"sha-256", digest.Params{Family: "sha", Bits: 256, TruncatedBits: 256}},
		{"sha-256-32", digest.Params{Family: "sha", Bits: 256, TruncatedBits: 32}},
		{"sha3-512-8", digest.Params{Family: "sha3", Bits: 512, TruncatedBits: 8}},
		{"blake2b-384-384", digest.Params{Family: "blake2b", Bits: 384, TruncatedBits: 384}},
		{"md5-128", digest.Params{Family: "md5", Bits: 128, TruncatedBits: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			params, err := digest.ParseAlgorithm(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.params, params)
		})
	}
}

func TestParseAlgorithm_negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"no bits", "sha"},
		{"empty family", "-256"},
		{"empty bits", "sha-"},
		{"non numeric bits", "sha-25x"},
		{"signed bits", "sha-+256"},
		{"bits not multiple of 8", "sha-255"},
		{"zero bits", "sha-0"},
		{"empty truncated", "sha-256-"},
		{"truncated not multiple of 8", "sha-256-12"},
		{"truncated exceeds bits", "sha-256-512"},
		{"zero truncated", "sha-256-0"},
		{"extra field", "sha-256-32-8"},
		{"huge bits", "sha-99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := digest.ParseAlgorithm(tt.spec)
			require.ErrorIs(t, err, digest.ErrInvalidAlgorithmSpec)

			var specErr digest.SpecError
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, tt.spec, specErr.Spec)
		})
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	params, err := digest.ParseAlgorithm("sha-256-32")
	require.NoError(t, err)

	assert.Equal(t, 32, params.Bytes())
	assert.Equal(t, 4, params.TruncatedBytes())
	assert.Equal(t, "sha-256-32", params.String())

	params, err = digest.ParseAlgorithm("sha-512")
	require.NoError(t, err)
	assert.Equal(t, "sha-512-512", params.String())
}

func TestFileComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url string
		out string
	}{
		{"http://example.com/.well-known/ni/sha-256-32?x=1", "sha-256-32"},
		{"http://example.com/dir/sha-256;abc", "sha-256"},
		{"http://example.com/dir/sha-256#frag", "sha-256"},
		{"sha-256-128", "sha-256-128"},
		{"../relative/sha3-512", "sha3-512"},
		{"http://example.com/a;b/c", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			out, err := digest.FileComponent(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestFileComponent_negative(t *testing.T) {
	t.Parallel()

	for _, url := range []string{"", "http://example.com/", "http://example.com/?q", ";x", "dir/#frag"} {
		_, err := digest.FileComponent(url)
		require.ErrorIs(t, err, digest.ErrEmptyComponent, url)
	}
}
