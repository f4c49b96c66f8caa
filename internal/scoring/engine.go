// Package scoring aggregates a post's votes into total rshares, a compact
// per-voter blob and the two decayed popularity scores.
package scoring

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"tfhive/internal/core"
	"tfhive/internal/steem"
)

// Aggregate is the vote/score facet of a cached post.
type Aggregate struct {
	Payout  float64
	RShares *big.Int
	CSVotes string
	ScTrend float64
	ScHot   float64
}

// AggregateVotes sums payout values and vote rshares and recomputes both
// scores. A post whose vote list and net rshares disagree is rejected with
// core.ErrVoteMismatch: the raw feed is corrupt and masking it would poison
// trend ordering.
func AggregateVotes(post *core.RawPost) (Aggregate, error) {
	payout := 0.0
	for _, value := range []string{post.TotalPayoutValue, post.CuratorPayoutValue, post.PendingPayoutValue} {
		amount, err := steem.ParseSBD(value)
		if err != nil {
			return Aggregate{}, err
		}
		payout += amount
	}

	if len(post.ActiveVotes) == 0 {
		net, err := steem.ParseBigInt(post.NetRShares)
		if err != nil {
			return Aggregate{}, err
		}
		if net.Sign() != 0 {
			return Aggregate{}, fmt.Errorf("%w: @%s/%s has no votes but net_rshares=%s",
				core.ErrVoteMismatch, post.Author, post.Permlink, post.NetRShares)
		}
	}

	rshares := new(big.Int)
	for _, vote := range post.ActiveVotes {
		r, err := steem.ParseBigInt(vote.RShares)
		if err != nil {
			return Aggregate{}, err
		}
		rshares.Add(rshares, r)
	}

	created, err := steem.ParseTime(post.Created)
	if err != nil {
		return Aggregate{}, err
	}

	return Aggregate{
		Payout:  payout,
		RShares: rshares,
		CSVotes: voteCSV(post.ActiveVotes),
		ScTrend: Score(rshares, created, TrendTimescale),
		ScHot:   Score(rshares, created, HotTimescale),
	}, nil
}

// voteCSV renders one "voter,rshares,percent,rep" line per vote.
func voteCSV(votes []core.Vote) string {
	return strings.Join(lo.Map(votes, func(vote core.Vote, _ int) string {
		rep := steem.RepLog10(vote.Reputation)
		return fmt.Sprintf("%s,%s,%d,%s",
			vote.Voter, vote.RShares, vote.Percent, strconv.FormatFloat(rep, 'f', -1, 64))
	}), "\n")
}
