// Package domain defines domain-level errors for the candles feature.
package domain

import "errors"

// Errors returned by market-data providers. Adapters wrap these so that callers can
// classify failures with errors.Is.
var (
	// ErrSymbolNotFound indicates the provider does not know the requested symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrUpstreamUnavailable indicates a network, timeout or provider-side failure.
	ErrUpstreamUnavailable = errors.New("market data provider unavailable")

	// ErrNoData indicates the provider answered but returned no usable bars.
	ErrNoData = errors.New("no market data returned")
)
