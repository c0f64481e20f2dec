package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("produces base64url without padding", func(t *testing.T) {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.Len(t, token, 43)
		require.NotContains(t, token, "=")
		require.NotContains(t, token, "+")
		require.NotContains(t, token, "/")
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)

		_, err = GenerateToken(-1)
		require.Error(t, err)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]bool, 100)
		for range 100 {
			token, err := GenerateToken(TokenSize128)
			require.NoError(t, err)
			require.NotContains(t, seen, token, "duplicate token generated")
			seen[token] = true
		}
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, FingerprintToken("abc"), FingerprintToken("abc"))
	})

	t.Run("differs per token", func(t *testing.T) {
		require.NotEqual(t, FingerprintToken("abc"), FingerprintToken("abd"))
	})

	t.Run("does not leak the token", func(t *testing.T) {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.NotContains(t, FingerprintToken(token), token)
	})
}

func TestGenerateNumericCode(t *testing.T) {
	t.Run("has exactly the requested digits", func(t *testing.T) {
		for _, digits := range []int{1, 6, 10} {
			code, err := GenerateNumericCode(digits)
			require.NoError(t, err)
			require.Len(t, code, digits)

			_, err = strconv.ParseUint(code, 10, 64)
			require.NoError(t, err, "code should be numeric: %q", code)
		}
	})

	t.Run("zero-pads small values", func(t *testing.T) {
		// With 6 digits, every output must be 6 characters even when the
		// drawn value is below 100000. Run enough samples to make a
		// short output overwhelmingly likely if padding were missing.
		for range 200 {
			code, err := GenerateNumericCode(6)
			require.NoError(t, err)
			require.Len(t, code, 6)
		}
	})

	t.Run("rejects out-of-range digit counts", func(t *testing.T) {
		_, err := GenerateNumericCode(0)
		require.Error(t, err)

		_, err = GenerateNumericCode(19)
		require.Error(t, err)
	})
}
