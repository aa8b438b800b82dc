package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSalaryRange(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantLow  Salary
		wantHigh Salary
	}{
		{name: "well formed", raw: "10000-20000", wantLow: Known(10000), wantHigh: Known(20000)},
		{name: "whitespace", raw: " 30000 - 50000 ", wantLow: Known(30000), wantHigh: Known(50000)},
		{name: "decimals", raw: "1000.5-2000.5", wantLow: Known(1000.5), wantHigh: Known(2000.5)},
		{name: "no separator", raw: "50000", wantLow: Known(50000), wantHigh: Missing},
		{name: "non numeric low", raw: "abc-20000", wantLow: Missing, wantHigh: Known(20000)},
		{name: "non numeric high", raw: "10000-xyz", wantLow: Known(10000), wantHigh: Missing},
		{name: "empty", raw: "", wantLow: Missing, wantHigh: Missing},
		{name: "infinity rejected", raw: "Inf-10", wantLow: Missing, wantHigh: Known(10)},
		{name: "extra parts ignored", raw: "1-2-3", wantLow: Known(1), wantHigh: Known(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high := ParseSalaryRange(tt.raw)
			assert.Equal(t, tt.wantLow, low)
			assert.Equal(t, tt.wantHigh, high)
		})
	}
}

func TestAverageSalary(t *testing.T) {
	assert.Equal(t, Known(15000), AverageSalary(Known(10000), Known(20000)))
	assert.Equal(t, Known(40000), AverageSalary(Known(30000), Known(50000)))
	assert.Equal(t, Missing, AverageSalary(Missing, Known(20000)))
	assert.Equal(t, Missing, AverageSalary(Known(10000), Missing))
	assert.Equal(t, Missing, AverageSalary(Missing, Missing))
}
