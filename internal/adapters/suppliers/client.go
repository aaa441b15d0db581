package suppliers

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotels_merge/internal/adapters/observability"
)

// Client fetches raw record lists from supplier endpoints with client-side
// rate limiting and bounded retries. A failure here aborts the whole run;
// adapters never retry on their own.
type Client struct {
	hc *http.Client
	rl *rate.Limiter
}

func New(rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		hc: &http.Client{Timeout: 20 * time.Second},
		rl: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

var (
	ErrNotFound     = errors.New("supplier: not found")
	ErrUnauthorized = errors.New("supplier: unauthorized")
	ErrForbidden    = errors.New("supplier: forbidden")
)

// Fetch GETs the endpoint and decodes the supplier's record array.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) Fetch(ctx context.Context, endpoint string) ([]map[string]any, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "hotels-merge/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			var out []map[string]any
			err := json.NewDecoder(resp.Body).Decode(&out)
			resp.Body.Close()
			observability.ObserveSupplier(endpoint, resp.StatusCode, time.Since(start))
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", endpoint, err)
			}
			return out, nil

		case http.StatusNotFound:
			resp.Body.Close()
			observability.ObserveSupplier(endpoint, resp.StatusCode, time.Since(start))
			return nil, ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			observability.ObserveSupplier(endpoint, resp.StatusCode, time.Since(start))
			return nil, ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			observability.ObserveSupplier(endpoint, resp.StatusCode, time.Since(start))
			return nil, ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d from %s", resp.StatusCode, endpoint)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			observability.ObserveSupplier(endpoint, resp.StatusCode, time.Since(start))
			return nil, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			observability.ObserveSupplier(endpoint, resp.StatusCode, time.Since(start))
			return nil, fmt.Errorf("bad status %d from %s: %s", resp.StatusCode, endpoint, strings.TrimSpace(string(b)))
		}
	}

	return nil, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
