package steem

import (
	"fmt"
	"math/big"
	"strings"

	"tfhive/internal/core"
)

// ParseBigInt parses a decimal rshares string. The node emits values outside
// the signed 64-bit range, so everything goes through math/big. Empty input
// parses as zero.
func ParseBigInt(raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return new(big.Int), nil
	}
	r, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: rshares %q", core.ErrBadAmount, raw)
	}
	return r, nil
}
