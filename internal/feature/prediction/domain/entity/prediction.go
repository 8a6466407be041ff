// Package entity defines the domain models for the prediction feature.
package entity

import "time"

// FallbackNote marks predictions that were synthesized because no real estimate was available.
const FallbackNote = "Fallback prediction due to data unavailability"

// Prediction is the next-day price estimate for one company. It is computed per
// request and never persisted.
type Prediction struct {
	Company        string
	Symbol         string
	PredictedPrice float64 // rounded to 2 decimals
	Timestamp      time.Time
	Note           string // empty for real estimates
}

// IsFallback reports whether the price was synthesized.
func (p Prediction) IsFallback() bool {
	return p.Note != ""
}
