package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// ErrUnsupportedScheme is returned for URLs that are not http, https or webcal.
var ErrUnsupportedScheme = errors.New("httpclient: unsupported URL scheme")

// CalendarClient downloads iCalendar feeds
type CalendarClient interface {
	GetCalendar(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

type calendarClient struct {
	client *http.Client
	logger *slog.Logger
}

// NewCalendarClient wraps client. A nil client means http.DefaultClient and a
// nil logger discards output.
func NewCalendarClient(client *http.Client, logger *slog.Logger) CalendarClient {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &calendarClient{client: client, logger: logger}
}

// IsFeedURL reports whether s names a remote calendar rather than a file.
func IsFeedURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "webcal://")
}

// resolveURL parses rawURL and maps webcal:// to https://
func resolveURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "webcal":
		u.Scheme = "https"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	return u, nil
}

// GetCalendar fetches the feed. The caller closes the returned body.
func (c *calendarClient) GetCalendar(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	resolvedURL, err := resolveURL(rawURL)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("starting GET request", "url", resolvedURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolvedURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "error", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		c.logger.Debug("unexpected status code",
			"status_code", resp.StatusCode,
			"status", resp.Status)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	c.logger.Debug("received calendar",
		"status", resp.Status,
		"content_type", resp.Header.Get("Content-Type"),
		"content_length", resp.ContentLength)
	return resp.Body, nil
}
