// Package payout classifies a post's reward window.
package payout

import (
	"time"

	"tfhive/internal/core"
	"tfhive/internal/steem"
)

const (
	// paidoutYear is the node's sentinel on cashout_time meaning the payout
	// window has already been processed.
	paidoutYear = 1969

	// burnAccount receiving a full-weight beneficiary split means the payout
	// is burned, i.e. declined.
	burnAccount = "null"

	fullWeight = 10000
)

// Classification is the payout facet of a cached post.
type Classification struct {
	IsPaidout   bool
	PayoutAt    time.Time
	IsDeclined  bool
	IsFullPower bool
}

// Classify derives the payout state of a raw post.
func Classify(post *core.RawPost) (Classification, error) {
	cashout, err := steem.ParseTime(post.CashoutTime)
	if err != nil {
		return Classification{}, err
	}
	lastPayout, err := steem.ParseTime(post.LastPayout)
	if err != nil {
		return Classification{}, err
	}

	c := Classification{
		IsPaidout: cashout.Year() == paidoutYear,
	}

	// Payout date is last_payout if paid, cashout_time if pending.
	if c.IsPaidout {
		c.PayoutAt = lastPayout
	} else {
		c.PayoutAt = cashout
	}

	maxAccepted, err := steem.ParseSBD(post.MaxAcceptedPayout)
	if err != nil {
		return Classification{}, err
	}

	c.IsDeclined = maxAccepted == 0 || isFullyBurned(post.Beneficiaries)
	c.IsFullPower = post.PercentSteemDollars == 0

	return c, nil
}

func isFullyBurned(beneficiaries []core.Beneficiary) bool {
	if len(beneficiaries) != 1 {
		return false
	}
	b := beneficiaries[0]
	return b.Account == burnAccount && b.Weight == fullWeight
}
