package scoring

import (
	"math"
	"math/big"
	"time"
)

const (
	// TrendTimescale decays slowly: sustained popularity dominates.
	TrendTimescale = 480000.0

	// HotTimescale decays ~48x faster: recency dominates.
	HotTimescale = 10000.0
)

// Score computes a time-decayed popularity score from total rshares and the
// post's creation time. Ported from calculate_score in steemd's tags plugin.
func Score(rshares *big.Int, created time.Time, timescale float64) float64 {
	mod, _ := new(big.Float).SetInt(rshares).Float64()
	mod /= 10000000.0

	order := math.Log10(math.Max(math.Abs(mod), 1))

	sign := -1.0
	if mod > 0 {
		sign = 1
	}

	return sign*order + float64(created.UTC().Unix())/timescale
}
