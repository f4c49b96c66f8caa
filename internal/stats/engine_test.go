package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tfhive/internal/core"
	"tfhive/internal/stats"
)

func post(votes ...core.Vote) *core.RawPost {
	return &core.RawPost{
		AuthorReputation:   "27000000000",
		PendingPayoutValue: "1.000 SBD",
		ActiveVotes:        votes,
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	t.Run("counts upvotes and curation score", func(t *testing.T) {
		t.Parallel()

		s, err := stats.Compute(post(
			core.Vote{Voter: "bob", RShares: "1000000000", Percent: 10000, Reputation: "100"},
			core.Vote{Voter: "travelfeed", RShares: "2000000000", Percent: 5000, Reputation: "100"},
			core.Vote{Voter: "carol", RShares: "0", Percent: 0, Reputation: "100"},
		))
		require.NoError(t, err)
		require.Equal(t, 2, s.UpVotes)
		require.Equal(t, 5000, s.CurationScore)
		require.Equal(t, 15, s.TotalVotes)
		require.False(t, s.Hide)
		require.False(t, s.Gray)
	})

	t.Run("total votes rounds half to even", func(t *testing.T) {
		t.Parallel()

		s, err := stats.Compute(post(
			core.Vote{Voter: "a", RShares: "1", Percent: 2500, Reputation: "100"},
			core.Vote{Voter: "b", RShares: "1", Percent: 1500, Reputation: "100"},
		))
		require.NoError(t, err)
		// 2.5 and 1.5 both round to 2.
		require.Equal(t, 4, s.TotalVotes)
	})

	t.Run("dust downvotes from negative rep voters are ignored for graying", func(t *testing.T) {
		t.Parallel()

		p := post(
			core.Vote{Voter: "troll", RShares: "-9999999999", Percent: -10000, Reputation: "-500"},
		)
		p.PendingPayoutValue = "0.000 SBD"

		s, err := stats.Compute(p)
		require.NoError(t, err)
		require.False(t, s.Gray)
	})

	t.Run("heavy downvotes gray the post", func(t *testing.T) {
		t.Parallel()

		p := post(
			core.Vote{Voter: "whale", RShares: "-50000000000", Percent: -10000, Reputation: "100"},
		)
		p.PendingPayoutValue = "0.000 SBD"

		s, err := stats.Compute(p)
		require.NoError(t, err)
		require.True(t, s.Gray)
	})

	t.Run("pending payout shields from hide and gray", func(t *testing.T) {
		t.Parallel()

		p := post(
			core.Vote{Voter: "whale", RShares: "-50000000000", Percent: -10000, Reputation: "100"},
		)
		p.AuthorReputation = "-6000000000000"

		s, err := stats.Compute(p)
		require.NoError(t, err)
		require.False(t, s.Hide)
		require.False(t, s.Gray)
	})

	t.Run("negative author rep hides when unpaid", func(t *testing.T) {
		t.Parallel()

		p := post()
		p.AuthorReputation = "-6000000000000"
		p.PendingPayoutValue = "0.010 SBD"

		s, err := stats.Compute(p)
		require.NoError(t, err)
		require.True(t, s.Hide)
		require.True(t, s.Gray)
		require.Less(t, s.AuthorRep, 0.0)
	})

	t.Run("flag weight scales with downvote magnitude", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			rshares string
			want    int
		}{
			{"-2000000000", 0},
			{"-200000000000", 1},
			{"-2000000000000", 2},
		}

		for _, c := range cases {
			s, err := stats.Compute(post(
				core.Vote{Voter: "flagger", RShares: c.rshares, Percent: -10000, Reputation: "100"},
			))
			require.NoError(t, err)
			require.Equal(t, c.want, s.FlagWeight)
		}
	})

	t.Run("no downvotes means zero flag weight", func(t *testing.T) {
		t.Parallel()

		s, err := stats.Compute(post(
			core.Vote{Voter: "bob", RShares: "1000000000", Percent: 10000, Reputation: "100"},
		))
		require.NoError(t, err)
		require.Zero(t, s.FlagWeight)
	})
}
