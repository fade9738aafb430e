package config

import "fmt"

// FeedConfig configures the background snapshot feed.
type FeedConfig struct {
	IntervalSeconds int `json:"interval_seconds"`
}

// SetDefaults applies fallback values for optional fields.
func (c *FeedConfig) SetDefaults() {
	if c.IntervalSeconds <= 0 {
		c.IntervalSeconds = 30
	}
}

// Validate checks the feed settings.
func (c FeedConfig) Validate() error {
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("interval_seconds must be positive")
	}
	return nil
}
