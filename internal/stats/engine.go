// Package stats derives moderation statistics and visibility heuristics from
// a post's vote set. Ported from condenser's contentStats.
package stats

import (
	"math"
	"math/big"
	"strings"

	"tfhive/internal/core"
	"tfhive/internal/steem"
)

const (
	// curatorAccount's vote percent is surfaced as the curation score.
	curatorAccount = "travelfeed"

	// pendingPayoutFloor is the minimum pending payout (SBD) that shields a
	// post from the hide/gray heuristics.
	pendingPayoutFloor = 0.02

	// flagWeightOffset: one weight point per magnitude of downvote stake
	// beyond 11 digits, roughly $400 at weight 1.
	flagWeightOffset = 11
)

var (
	// dustThreshold: downvotes from negative-reputation voters below this
	// magnitude carry no moderation signal.
	dustThreshold = big.NewInt(10_000_000_000)

	// grayThreshold on adjusted net rshares marks a post as low value.
	grayThreshold = big.NewInt(-9_999_999_999)
)

// Stats is the moderation facet of a cached post.
type Stats struct {
	Hide          bool
	Gray          bool
	AuthorRep     float64
	FlagWeight    int
	TotalVotes    int
	CurationScore int
	UpVotes       int
}

// Compute runs a single pass over the vote set. Retracted votes (percent 0)
// are skipped entirely.
func Compute(post *core.RawPost) (Stats, error) {
	var (
		netAdj     = new(big.Int)
		negRShares = new(big.Int)

		totalVotes    int
		curationScore int
		upVotes       int
	)

	for _, vote := range post.ActiveVotes {
		if vote.Percent == 0 {
			continue
		}

		// Total votes is the summed vote weight coarsened to "miles".
		totalVotes += int(math.RoundToEven(float64(vote.Percent) / 1000))

		if vote.Voter == curatorAccount {
			curationScore = vote.Percent
		}

		rshares, err := steem.ParseBigInt(vote.RShares)
		if err != nil {
			return Stats{}, err
		}

		if vote.Percent > 0 {
			upVotes++
		} else {
			negRShares.Add(negRShares, rshares)
		}

		// For graying: sum rshares, but ignore dust downvotes from
		// negative-reputation voters.
		negRep := strings.HasPrefix(strings.TrimSpace(vote.Reputation), "-")
		if !(negRep && vote.Percent < 0 && rshares.CmpAbs(dustThreshold) < 0) {
			netAdj.Add(netAdj, rshares)
		}
	}

	authorRep := steem.RepLog10(post.AuthorReputation)

	pending, err := steem.ParseSBD(post.PendingPayoutValue)
	if err != nil {
		return Stats{}, err
	}
	hasPendingPayout := pending >= pendingPayoutFloor

	isLowValue := netAdj.Cmp(grayThreshold) < 0

	return Stats{
		Hide:          !hasPendingPayout && authorRep < 0,
		Gray:          !hasPendingPayout && (authorRep < 1 || isLowValue),
		AuthorRep:     authorRep,
		FlagWeight:    flagWeight(negRShares),
		TotalVotes:    totalVotes,
		CurationScore: curationScore,
		UpVotes:       upVotes,
	}, nil
}

// flagWeight is a cheap log10 estimate of downvoting stake: halve the
// negative rshares and count digits past eleven. Zero or near-zero downvote
// stake always maps to zero.
func flagWeight(negRShares *big.Int) int {
	if negRShares.Sign() == 0 {
		return 0
	}

	half := new(big.Int).Quo(negRShares, big.NewInt(2))
	digits := len(new(big.Int).Abs(half).String())

	if digits <= flagWeightOffset {
		return 0
	}
	return digits - flagWeightOffset
}
