package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-ni/codec"
)

func TestLuhnMod16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  byte
	}{
		{"empty", "", '0'},
		{"zero", "0", '0'},
		{"one doubled on the right", "1", 'e'},
		{"f folds to one plus e", "f", '1'},
		{"truncated 32 of hello", "2cf24dba", '3'},
		{"rfc 6920 example", "53269057e12fe2b74ba07c892560a2", 'f'},
		{"upper case accepted", "53269057E12FE2B74BA07C892560A2", 'f'},
		{"full sha-256 of hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", '0'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := codec.LuhnMod16(tt.in)
			require.NoError(t, err)
			assert.Equal(t, string(tt.out), string(out))
			assert.True(t, codec.ValidLuhnMod16(tt.in, tt.out))
		})
	}
}

func TestLuhnMod16_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := codec.LuhnMod16("2cf24dba5fb0a30e")
	require.NoError(t, err)

	for range 10 {
		again, err := codec.LuhnMod16("2cf24dba5fb0a30e")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Any single changed character must change the check digit.
func TestLuhnMod16_SingleCharacterChange(t *testing.T) {
	t.Parallel()

	const digits = "2cf24dba5fb0a30e26e83b2a"

	base, err := codec.LuhnMod16(digits)
	require.NoError(t, err)

	const alphabet = "0123456789abcdef"

	for i := range len(digits) {
		for j := range len(alphabet) {
			if alphabet[j] == digits[i] {
				continue
			}

			changed := digits[:i] + string(alphabet[j]) + digits[i+1:]

			check, err := codec.LuhnMod16(changed)
			require.NoError(t, err)
			require.NotEqual(t, base, check, "position %d, digit %c", i, alphabet[j])
		}
	}
}

// The multiplier phase starts at the right: prepending a zero keeps the digit.
func TestLuhnMod16_TraversalFromRight(t *testing.T) {
	t.Parallel()

	a, err := codec.LuhnMod16("2cf24dba")
	require.NoError(t, err)

	b, err := codec.LuhnMod16("02cf24dba")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLuhnMod16_negative(t *testing.T) {
	t.Parallel()

	_, err := codec.LuhnMod16("2cf2;dba")
	require.ErrorIs(t, err, codec.ErrInvalidHexDigit)

	assert.False(t, codec.ValidLuhnMod16("xyz", '0'))
	assert.False(t, codec.ValidLuhnMod16("2cf24dba", '4'))
}
