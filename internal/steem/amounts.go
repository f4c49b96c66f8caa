package steem

import (
	"fmt"
	"strconv"
	"strings"

	"tfhive/internal/core"
)

// ParseAmount splits an "amount SYMBOL" asset string.
func ParseAmount(s string) (float64, string, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("%w: %q", core.ErrBadAmount, s)
	}

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", core.ErrBadAmount, s)
	}

	return amount, parts[1], nil
}

// ParseSBD parses an asset string denominated in SBD, the reference currency
// of every payout field in the cache.
func ParseSBD(s string) (float64, error) {
	amount, symbol, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if symbol != "SBD" {
		return 0, fmt.Errorf("%w: expected SBD, got %q", core.ErrBadAmount, s)
	}
	return amount, nil
}
