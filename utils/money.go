package utils

import (
	"math"
	"strconv"
	"strings"
)

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ParseAmount parses a user-supplied amount string. Anything that fails to
// parse (empty, garbage, NaN, Inf) comes back as 0 so a bad field degrades
// a total instead of failing the request.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Round2(v)
}
