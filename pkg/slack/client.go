package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	slackapi "github.com/slack-go/slack"
	"golang.org/x/time/rate"

	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/metrics"
)

// Client posts messages to Slack through the Web API.
type Client struct {
	l          log.Logger
	api        *slackapi.Client
	token      string
	channel    string
	httpClient *http.Client

	retries         int
	initialInterval time.Duration
	limiter         *rate.Limiter
	inflight        chan struct{}
	debug           bool
}

// New creates a Slack client. Zero values in cfg fall back to the defaults.
func New(l log.Logger, cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = DefaultRetryInitialInterval
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = DefaultRatePerSecond
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	c := &Client{
		l:               l,
		token:           cfg.Token,
		channel:         cfg.Channel,
		httpClient:      cfg.HTTPClient,
		retries:         cfg.RetryAttempts,
		initialInterval: cfg.RetryInitialInterval,
		limiter:         rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		inflight:        make(chan struct{}, cfg.MaxConcurrency),
		debug:           cfg.DebugEnabled,
	}
	c.SetAPIURL(cfg.APIURL)
	return c
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.api = slackapi.New(c.token,
		slackapi.OptionAPIURL(strings.TrimRight(url, "/")+"/"),
		slackapi.OptionHTTPClient(c.httpClient),
	)
}

// PostMessage posts text to the configured channel.
func (c *Client) PostMessage(ctx context.Context, text string) (Result, error) {
	return c.PostMessageTo(ctx, c.channel, text)
}

// PostDebug posts text only when debug posting is enabled.
func (c *Client) PostDebug(ctx context.Context, text string) (Result, error) {
	if !c.debug {
		return Result{}, nil
	}
	return c.PostMessage(ctx, text)
}

// PostMessageTo posts text to channel, retrying network failures, 429 and
// 5xx answers with exponential backoff.
func (c *Client) PostMessageTo(ctx context.Context, channel, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyMessage
	}
	if c.token == "" || channel == "" {
		return Result{}, ErrNotConfigured
	}

	select {
	case c.inflight <- struct{}{}:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	defer func() { <-c.inflight }()

	var res Result
	op := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		var err error
		res, err = c.post(ctx, channel, text)
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.retries)), ctx)
	err := backoff.RetryNotify(op, bo, func(err error, next time.Duration) {
		c.l.Warnf(ctx, "slack.PostMessage: retrying in %s: %v", next, err)
	})
	metrics.ReportChatMessage(err == nil)
	return res, err
}

func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = c.initialInterval << c.retries
	b.MaxElapsedTime = 0
	return b
}

func (c *Client) post(ctx context.Context, channel, text string) (Result, error) {
	ch, ts, err := c.api.PostMessageContext(ctx, channel, slackapi.MsgOptionText(text, false))
	if err == nil {
		return Result{StatusCode: http.StatusOK, OK: true, Channel: ch, TS: ts}, nil
	}

	var (
		rateErr   *slackapi.RateLimitedError
		statusErr slackapi.StatusCodeError
		apiErr    slackapi.SlackErrorResponse
	)
	switch {
	case errors.As(err, &rateErr):
		// Slack names the wait; honour it before the backoff delay.
		select {
		case <-time.After(rateErr.RetryAfter):
		case <-ctx.Done():
			return Result{StatusCode: http.StatusTooManyRequests}, backoff.Permanent(ctx.Err())
		}
		return Result{StatusCode: http.StatusTooManyRequests}, fmt.Errorf("slack: chat.postMessage: %w", err)
	case errors.As(err, &statusErr):
		res := Result{StatusCode: statusErr.Code}
		if statusErr.Retryable() {
			return res, fmt.Errorf("slack: chat.postMessage: %w", err)
		}
		return res, backoff.Permanent(fmt.Errorf("slack: chat.postMessage: %w", err))
	case errors.As(err, &apiErr):
		return Result{StatusCode: http.StatusOK}, backoff.Permanent(fmt.Errorf("%w: %s", ErrAPI, apiErr.Err))
	default:
		return Result{}, fmt.Errorf("slack: send message: %w", err)
	}
}
