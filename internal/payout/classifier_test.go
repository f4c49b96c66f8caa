package payout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tfhive/internal/core"
	"tfhive/internal/payout"
)

func basePost() *core.RawPost {
	return &core.RawPost{
		CashoutTime:         "2019-07-08T12:00:00",
		LastPayout:          "1970-01-01T00:00:00",
		MaxAcceptedPayout:   "1000000.000 SBD",
		PercentSteemDollars: 10000,
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("pending post pays out at cashout time", func(t *testing.T) {
		t.Parallel()

		c, err := payout.Classify(basePost())
		require.NoError(t, err)
		require.False(t, c.IsPaidout)
		require.Equal(t, time.Date(2019, 7, 8, 12, 0, 0, 0, time.UTC), c.PayoutAt)
		require.False(t, c.IsDeclined)
		require.False(t, c.IsFullPower)
	})

	t.Run("1969 cashout sentinel marks paid out", func(t *testing.T) {
		t.Parallel()

		post := basePost()
		post.CashoutTime = "1969-12-31T23:59:59"
		post.LastPayout = "2019-07-01T12:00:00"

		c, err := payout.Classify(post)
		require.NoError(t, err)
		require.True(t, c.IsPaidout)
		require.Equal(t, time.Date(2019, 7, 1, 12, 0, 0, 0, time.UTC), c.PayoutAt)
	})

	t.Run("zero max accepted payout declines", func(t *testing.T) {
		t.Parallel()

		post := basePost()
		post.MaxAcceptedPayout = "0.000 SBD"

		c, err := payout.Classify(post)
		require.NoError(t, err)
		require.True(t, c.IsDeclined)
	})

	t.Run("full burn beneficiary declines", func(t *testing.T) {
		t.Parallel()

		post := basePost()
		post.Beneficiaries = []core.Beneficiary{{Account: "null", Weight: 10000}}

		c, err := payout.Classify(post)
		require.NoError(t, err)
		require.True(t, c.IsDeclined)
	})

	t.Run("partial burn does not decline", func(t *testing.T) {
		t.Parallel()

		post := basePost()
		post.Beneficiaries = []core.Beneficiary{
			{Account: "null", Weight: 5000},
			{Account: "travelfeed", Weight: 5000},
		}

		c, err := payout.Classify(post)
		require.NoError(t, err)
		require.False(t, c.IsDeclined)
	})

	t.Run("zero percent steem dollars is full power", func(t *testing.T) {
		t.Parallel()

		post := basePost()
		post.PercentSteemDollars = 0

		c, err := payout.Classify(post)
		require.NoError(t, err)
		require.True(t, c.IsFullPower)
	})

	t.Run("malformed max accepted payout errors", func(t *testing.T) {
		t.Parallel()

		post := basePost()
		post.MaxAcceptedPayout = "garbage"

		_, err := payout.Classify(post)
		require.ErrorIs(t, err, core.ErrBadAmount)
	})
}
