// Package dto defines data transfer objects for the Yahoo Finance chart API.
package dto

// ChartResponse is the top-level container returned by /v8/finance/chart/{symbol}.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

type Chart struct {
	Result []Result    `json:"result"`
	Error  *ChartError `json:"error"`
}

// ChartError is populated instead of Result when the request is rejected.
// Unknown tickers come back with Code "Not Found".
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

type Meta struct {
	Symbol               string `json:"symbol"`
	Currency             string `json:"currency"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	GMTOffset            int    `json:"gmtoffset"`
}

type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds parallel arrays indexed like Result.Timestamp.
// Entries are null on days without trading, hence the pointers.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}
