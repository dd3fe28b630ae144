package hasher_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-ni/hasher"
)

func TestNewDigest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family string
		bits   int
		abc    string
	}{
		{hasher.FamilySHA, 256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{hasher.FamilySHA, 224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{hasher.FamilySHA3, 256, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			t.Parallel()

			h, err := hasher.NewDigest(tt.family, tt.bits)
			require.NoError(t, err)

			sum, err := hasher.Sum(h, []byte("abc"))
			require.NoError(t, err)
			assert.Equal(t, tt.abc, hex.EncodeToString(sum))
		})
	}
}

func TestNewDigest_Sizes(t *testing.T) {
	t.Parallel()

	for _, name := range []struct {
		family string
		bits   int
	}{
		{hasher.FamilySHA, 384},
		{hasher.FamilySHA, 512},
		{hasher.FamilySHA3, 224},
		{hasher.FamilySHA3, 384},
		{hasher.FamilySHA3, 512},
		{hasher.FamilyBLAKE2b, 256},
		{hasher.FamilyBLAKE2b, 384},
		{hasher.FamilyBLAKE2b, 512},
	} {
		h, err := hasher.NewDigest(name.family, name.bits)
		require.NoError(t, err)
		assert.Equal(t, name.bits/8, h.Size(), "%s-%d", name.family, name.bits)
	}
}

func TestNewDigest_negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family string
		bits   int
	}{
		{"sha", 160},
		{"md", 5},
		{"", 256},
		{"blake2b", 128},
	}

	for _, tt := range tests {
		_, err := hasher.NewDigest(tt.family, tt.bits)
		require.ErrorIs(t, err, hasher.ErrUnknownPrimitive)
	}
}

func TestPrimitives(t *testing.T) {
	t.Parallel()

	list := hasher.Primitives()
	assert.Len(t, list, 11)
	assert.Contains(t, list, "sha-256")
	assert.Contains(t, list, "blake2b-512")
	assert.IsNonDecreasing(t, list)
}
