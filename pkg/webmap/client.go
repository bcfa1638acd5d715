// Package webmap retrieves map-provider pages and extracts the line
// geometry they embed as inline JavaScript, driving the conversion
// pipeline through to a GPX file on disk.
package webmap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultUserAgent identifies this tool to the map host.
	DefaultUserAgent = "webgpx/0.1.0"

	// DefaultTimeout bounds a fetch when the caller does not supply one.
	DefaultTimeout = 10 * time.Second
)

var (
	// Shared HTTP client with connection pooling
	httpClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	// One request per second keeps repeated library use polite to the
	// map host; a burst of three covers test and one-shot CLI runs
	// without waiting.
	fetchLimiter = rate.NewLimiter(rate.Every(time.Second), 3)
)

// Fetch performs a single blocking GET against pageURL and returns the
// response body as text. There is exactly one attempt: any transport
// failure, non-OK status or empty body fails the fetch.
func Fetch(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := fetchLimiter.Wait(ctx); err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	if len(body) == 0 {
		return "", fmt.Errorf("fetch %s: %w", pageURL, ErrEmptyResponse)
	}

	return string(body), nil
}
