// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests against the food-service portal,
// sending a browser user agent because the portal rejects bare clients.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/gaurav-prasanna/hyeat/core"
	"golang.org/x/net/html/charset"
)

const (
	DefaultEndpoint  = "https://fnb.hanyang.ac.kr/front/fnbmMdMenu"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultTimeout   = 30 * time.Second
)

// HTTPFetcher fetches portal pages via HTTP.
type HTTPFetcher struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// Option customizes an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithEndpoint overrides the portal URL.
func WithEndpoint(endpoint string) Option {
	return func(f *HTTPFetcher) {
		if endpoint != "" {
			f.endpoint = endpoint
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		endpoint:  DefaultEndpoint,
		userAgent: DefaultUserAgent,
		client:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the portal page for date, or the current week when date is empty.
// Transport failures and non-2xx responses are reported as *core.FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, date string) (*core.FetchResult, error) {
	target, err := f.url(date)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &core.FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.FetchError{URL: target, StatusCode: resp.StatusCode}
	}

	reader, err := bodyReader(resp)
	if err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &core.FetchError{URL: target, Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &core.FetchResult{
		URL:        target,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// bodyReader decodes the declared charset. The portal serves UTF-8 but does
// not always say so, and sniffing an ASCII-only head would pick windows-1252.
func bodyReader(resp *http.Response) (io.Reader, error) {
	contentType := resp.Header.Get("Content-Type")
	if _, params, err := mime.ParseMediaType(contentType); err == nil && params["charset"] != "" {
		return charset.NewReader(resp.Body, contentType)
	}
	return charset.NewReaderLabel("utf-8", resp.Body)
}

func (f *HTTPFetcher) url(date string) (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint %q: %w", f.endpoint, err)
	}
	if date != "" {
		q := u.Query()
		q.Set("date", date)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
