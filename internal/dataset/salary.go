package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseSalaryRange splits a "low-high" salary range into its two bounds.
// Each side that is absent or not a finite number comes back as Missing;
// malformed input never fails the caller.
func ParseSalaryRange(raw string) (low, high Salary) {
	parts := strings.Split(raw, "-")
	low = parseAmount(parts[0])
	if len(parts) > 1 {
		high = parseAmount(parts[1])
	}
	return low, high
}

// AverageSalary returns the midpoint of low and high, or Missing when either is missing.
func AverageSalary(low, high Salary) Salary {
	if !low.Valid || !high.Valid {
		return Missing
	}
	return Known((low.Amount + high.Amount) / 2)
}

func parseAmount(s string) Salary {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing
	}
	return Known(v)
}
