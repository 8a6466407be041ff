// Package usecase implements next-day price estimation for the company catalogue.
package usecase

import (
	"math"

	"stock_prediction/internal/feature/candles/domain/entity"
)

// SequenceLength は1つの入力ウィンドウに含める終値の数です。
const SequenceLength = 60

// Sequences holds min-max scaled sliding windows over a closing-price series.
// Windows[i] is followed by Targets[i] in the original series.
type Sequences struct {
	Windows [][]float64
	Targets []float64
	Min     float64
	Max     float64
}

// Len returns the number of (window, target) pairs.
func (s Sequences) Len() int {
	return len(s.Targets)
}

// Unscale maps a scaled value back to a price.
func (s Sequences) Unscale(v float64) float64 {
	return s.Min + v*(s.Max-s.Min)
}

// PrepareSequences scales the closes of series into [0, 1] using the series min and max
// and emits every window of seqLen consecutive scaled closes together with the next
// scaled close. It returns false when the series has fewer than seqLen+1 bars, is flat,
// or contains a non-finite close. The result depends only on the input bars.
func PrepareSequences(series entity.BarSeries, seqLen int) (Sequences, bool) {
	if seqLen <= 0 || len(series) < seqLen+1 {
		return Sequences{}, false
	}

	closes := series.Closes()
	lo, hi := closes[0], closes[0]
	for _, p := range closes {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Sequences{}, false
		}
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	// 値幅ゼロはゼロ除算になるためデータ不足として扱う
	span := hi - lo
	if span == 0 {
		return Sequences{}, false
	}

	scaled := make([]float64, len(closes))
	for i, p := range closes {
		scaled[i] = (p - lo) / span
	}

	n := len(scaled) - seqLen
	out := Sequences{
		Windows: make([][]float64, 0, n),
		Targets: make([]float64, 0, n),
		Min:     lo,
		Max:     hi,
	}
	for i := seqLen; i < len(scaled); i++ {
		w := make([]float64, seqLen)
		copy(w, scaled[i-seqLen:i])
		out.Windows = append(out.Windows, w)
		out.Targets = append(out.Targets, scaled[i])
	}
	return out, true
}
