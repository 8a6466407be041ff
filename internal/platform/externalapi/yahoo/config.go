// Package yahoo provides a client for the public Yahoo Finance chart API.
package yahoo

import "time"

const (
	// DefaultBaseURL is the v8 chart endpoint; the symbol is appended as a path segment.
	DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	// DefaultUserAgent is sent on every request. The endpoint rejects clients without one.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds configuration for the Yahoo chart client.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return c
}
