package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{154.4999, 154.5},
		{2.675, 2.68},
		{0.004, 0},
		{0.005, 0.01},
		{-1.234, -1.23},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestRound2_NonFinite(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		assert.True(t, math.IsNaN(Round2(math.NaN())))
		assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
		assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
	})
}
