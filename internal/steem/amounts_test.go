package steem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tfhive/internal/core"
	"tfhive/internal/steem"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	t.Run("parses amount and symbol", func(t *testing.T) {
		t.Parallel()

		amount, symbol, err := steem.ParseAmount("12.345 SBD")
		require.NoError(t, err)
		require.InDelta(t, 12.345, amount, 1e-9)
		require.Equal(t, "SBD", symbol)
	})

	t.Run("rejects missing symbol", func(t *testing.T) {
		t.Parallel()

		_, _, err := steem.ParseAmount("12.345")
		require.ErrorIs(t, err, core.ErrBadAmount)
	})

	t.Run("rejects garbage amount", func(t *testing.T) {
		t.Parallel()

		_, _, err := steem.ParseAmount("abc STEEM")
		require.ErrorIs(t, err, core.ErrBadAmount)
	})
}

func TestParseSBD(t *testing.T) {
	t.Parallel()

	t.Run("accepts SBD", func(t *testing.T) {
		t.Parallel()

		amount, err := steem.ParseSBD("0.020 SBD")
		require.NoError(t, err)
		require.InDelta(t, 0.02, amount, 1e-9)
	})

	t.Run("rejects other symbols", func(t *testing.T) {
		t.Parallel()

		_, err := steem.ParseSBD("1.000 STEEM")
		require.ErrorIs(t, err, core.ErrBadAmount)
	})
}

func TestParseBigInt(t *testing.T) {
	t.Parallel()

	t.Run("empty string is zero", func(t *testing.T) {
		t.Parallel()

		r, err := steem.ParseBigInt("")
		require.NoError(t, err)
		require.Zero(t, r.Sign())
	})

	t.Run("parses beyond int64", func(t *testing.T) {
		t.Parallel()

		r, err := steem.ParseBigInt("123456789012345678901234567890")
		require.NoError(t, err)
		require.Equal(t, "123456789012345678901234567890", r.String())
	})

	t.Run("rejects non-decimal input", func(t *testing.T) {
		t.Parallel()

		_, err := steem.ParseBigInt("12x4")
		require.ErrorIs(t, err, core.ErrBadAmount)
	})
}
