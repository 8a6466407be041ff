// Package entity defines the domain models for the candles feature.
package entity

import (
	"sort"
	"time"
)

// Bar represents one trading day of OHLCV data for a symbol.
type Bar struct {
	Time   time.Time // Trading day (provider timezone, date component is significant)
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// BarSeries is an ordered sequence of daily bars for one symbol.
// Dates are strictly increasing.
type BarSeries []Bar

// NewBarSeries sorts bars chronologically and drops entries that share a trading day
// with an earlier entry, keeping the most recent one seen. The input slice is not modified.
func NewBarSeries(bars []Bar) BarSeries {
	if len(bars) == 0 {
		return BarSeries{}
	}
	out := make([]Bar, len(bars))
	copy(out, bars)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	// 同じ日付のバーは後勝ち
	series := make(BarSeries, 0, len(out))
	for _, b := range out {
		if n := len(series); n > 0 && sameDay(series[n-1].Time, b.Time) {
			series[n-1] = b
			continue
		}
		series = append(series, b)
	}
	return series
}

// Closes returns the closing prices in chronological order.
func (s BarSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Tail returns the most recent n bars. It returns the whole series when n >= len(s).
func (s BarSeries) Tail(n int) BarSeries {
	if n <= 0 {
		return BarSeries{}
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Last returns the most recent bar.
func (s BarSeries) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
