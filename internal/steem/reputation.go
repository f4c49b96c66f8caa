package steem

import (
	"math"
	"strings"
)

// RepLog10 compresses a raw reputation integer (as a decimal string) into the
// display scale: log10 magnitude, offset so small accounts map to zero,
// 9 points per magnitude, centered at 25. Sign-preserving, floored so a fresh
// account never drops below the baseline from magnitude alone.
func RepLog10(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return 25
	}

	sign := 1.0
	if raw[0] == '-' {
		sign = -1
		raw = raw[1:]
	} else if raw[0] == '+' {
		raw = raw[1:]
	}
	if raw == "" || strings.Trim(raw, "0123456789") != "" {
		return 25
	}

	out := digitLog10(raw)
	out = math.Max(out-9, 0) * sign // @ -9, $1 earned is approx magnitude 1
	out = out*9 + 25                // 9 points per magnitude, center at 25
	return math.Round(out*100) / 100
}

// digitLog10 approximates log10 of a decimal string of arbitrary length using
// its digit count and up to four leading digits.
func digitLog10(digits string) float64 {
	lead := digits
	if len(lead) > 4 {
		lead = lead[:4]
	}

	leading := 0.0
	for _, c := range lead {
		leading = leading*10 + float64(c-'0')
	}
	if leading == 0 {
		return 0
	}

	log := math.Log10(leading) + 0.00000001
	return float64(len(digits)-1) + (log - math.Trunc(log))
}
