package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("generates valid IDs", func(t *testing.T) {
		id := New()
		require.False(t, id.IsZero())

		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("IDs minted in order sort in order", func(t *testing.T) {
		prev := New()
		for range 100 {
			next := New()
			require.Less(t, prev.String(), next.String())
			prev = next
		}
	})
}

func TestNewAt(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestParse(t *testing.T) {
	t.Run("accepts canonical ULIDs", func(t *testing.T) {
		id, err := Parse("01HQZX3VJ5K8YBT2RW4N6MCE7D")
		require.NoError(t, err)
		require.Equal(t, "01HQZX3VJ5K8YBT2RW4N6MCE7D", id.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id, err := Parse("  01HQZX3VJ5K8YBT2RW4N6MCE7D  ")
		require.NoError(t, err)
		require.Equal(t, "01HQZX3VJ5K8YBT2RW4N6MCE7D", id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "not-a-ulid", "01HQZX", "01HQZX3VJ5K8YBT2RW4N6MCE7!"} {
			_, err := Parse(input)
			require.ErrorIs(t, err, ErrInvalid, "input %q", input)
		}
	})
}

func TestMustParse(t *testing.T) {
	require.Panics(t, func() { MustParse("bogus") })
	require.NotPanics(t, func() { MustParse("01HQZX3VJ5K8YBT2RW4N6MCE7D") })
}

func TestZero(t *testing.T) {
	require.True(t, Zero.IsZero())
	require.True(t, Zero.Time().IsZero())
	require.False(t, New().IsZero())
}
