package slack

import (
	"errors"
	"net/http"
	"time"
)

const (
	DefaultAPIURL               = "https://slack.com/api/"
	DefaultRetryAttempts        = 5
	DefaultRetryInitialInterval = 2 * time.Second
	DefaultRatePerSecond        = 1.0
)

var (
	ErrEmptyMessage  = errors.New("slack: empty message")
	ErrNotConfigured = errors.New("slack: token or channel not configured")
	ErrAPI           = errors.New("slack: api error")
)

// Config configures a Client.
type Config struct {
	Token                string
	Channel              string
	APIURL               string
	RetryAttempts        int
	RetryInitialInterval time.Duration
	RatePerSecond        float64
	MaxConcurrency       int
	// DebugEnabled turns PostDebug on. It is off in production and test.
	DebugEnabled bool
	HTTPClient   *http.Client
}

// Result describes one chat.postMessage call.
type Result struct {
	StatusCode int    `json:"status_code"`
	OK         bool   `json:"ok"`
	Channel    string `json:"channel,omitempty"`
	TS         string `json:"ts,omitempty"`
}
