// SPDX-License-Identifier: MPL-2.0

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

const (
	// maxTextBytes bounds documents read by FetchText.
	maxTextBytes = 32 << 20

	defaultRetries   = 3
	defaultBackoff   = 500 * time.Millisecond
	defaultUserAgent = "hearth/dev"
)

// ErrTooLarge is returned when a text document exceeds the size bound.
var ErrTooLarge = errors.New("response exceeds size limit")

type (
	// StatusError reports an unexpected HTTP status.
	StatusError struct {
		URL        string
		StatusCode int
	}

	// Client fetches text and files over HTTP.
	Client struct {
		httpClient *http.Client
		userAgent  string
		retries    int
		backoff    time.Duration
		// limiter is nil when requests are not rate limited.
		limiter *rate.Limiter
	}

	// Option configures a Client during construction.
	Option func(*Client)
)

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// WithHTTPClient sets the HTTP client, for tests or proxies.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithRetries sets how many times a transient failure is retried. Zero
// disables retries.
func WithRetries(n int) Option {
	return func(cl *Client) { cl.retries = max(n, 0) }
}

// WithBackoff sets the delay before the first retry. Each further retry
// doubles it.
func WithBackoff(d time.Duration) Option {
	return func(cl *Client) { cl.backoff = d }
}

// WithRateLimit caps request starts at perSecond, shared by every caller of
// the Client. Zero or less disables the cap.
func WithRateLimit(perSecond int) Option {
	return func(cl *Client) {
		if perSecond <= 0 {
			cl.limiter = nil
			return
		}
		cl.limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
	}
}

// New creates a Client. Defaults: http.DefaultClient, three retries with a
// 500ms initial backoff.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		userAgent:  defaultUserAgent,
		retries:    defaultRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchText GETs rawURL and returns the body as a string.
func (c *Client) FetchText(ctx context.Context, rawURL string) (string, error) {
	var text string
	err := c.withRetry(ctx, rawURL, func() error {
		body, err := c.get(ctx, rawURL)
		if err != nil {
			return err
		}
		defer func() { _ = body.Close() }() // read-only response body

		data, err := io.ReadAll(io.LimitReader(body, maxTextBytes+1))
		if err != nil {
			return fmt.Errorf("reading %s: %w", redactURL(rawURL), err)
		}
		if len(data) > maxTextBytes {
			return fmt.Errorf("reading %s: %w", redactURL(rawURL), ErrTooLarge)
		}
		text = string(data)
		return nil
	})
	return text, err
}

// Download streams rawURL to dest, creating parent directories. An existing
// dest is replaced; a failed download leaves dest untouched.
func (c *Client) Download(ctx context.Context, rawURL, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return c.withRetry(ctx, rawURL, func() error {
		return c.downloadOnce(ctx, rawURL, dest)
	})
}

func (c *Client) downloadOnce(ctx context.Context, rawURL, dest string) (err error) {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }() // read-only response body

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, body); err != nil {
		return fmt.Errorf("downloading %s: %w", redactURL(rawURL), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err = os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}

// get issues a GET and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting to GET %s: %w", redactURL(rawURL), err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", redactURL(rawURL), err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: redactURL(rawURL), StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// withRetry runs fn until it succeeds, fails permanently, or the retry
// budget is spent. The caller's context bounds the total time.
func (c *Client) withRetry(ctx context.Context, rawURL string, fn func() error) error {
	var err error
	for attempt := range c.retries + 1 {
		if attempt > 0 {
			delay := c.backoff * time.Duration(1<<(attempt-1))
			slog.Debug("retrying request", "url", redactURL(rawURL), "attempt", attempt+1, "delay", delay, "error", err)
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry canceled: %w", errors.Join(ctx.Err(), err))
			case <-time.After(delay):
			}
		}

		err = fn()
		if err == nil || !retryable(ctx, err) {
			return err
		}
	}
	return err
}

// retryable reports whether err is transient. Cancellation and 4xx
// responses other than 429 are permanent.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return !errors.Is(err, ErrTooLarge)
}

// redactURL strips query parameters and fragments, which may carry tokens,
// before a URL is logged or put into an error.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
