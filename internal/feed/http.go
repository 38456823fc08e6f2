package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// HTTPSource fetches datasets from the static site's data directory. A
// token-bucket limiter keeps the polling dashboard polite towards the
// hosting CDN.
type HTTPSource struct {
	base    *url.URL
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPSource builds a source rooted at baseURL (".../data/").
func NewHTTPSource(baseURL string, timeout time.Duration, perSec float64) (*HTTPSource, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("feed: parse base url %q: %w", baseURL, err)
	}
	if perSec <= 0 {
		perSec = 4
	}
	return &HTTPSource{
		base:    base,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(perSec), int(perSec)),
	}, nil
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("feed: rate limiter: %w", err)
	}

	u := s.base.JoinPath(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch %s: %w", name, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("feed: fetch %s: unexpected status %d", name, resp.StatusCode)
	}
	return resp.Body, nil
}
