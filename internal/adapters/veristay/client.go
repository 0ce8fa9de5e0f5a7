// Package veristay is an HTTP client for the Veristay API, used by the seeder.
package veristay

import (
	"bytes"
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

	"veristay/internal/adapters/observability"
	"veristay/internal/domain"
)

const maxAttempts = 4

var ErrNotFound = errors.New("veristay: not found")

// APIError is a non-retryable error response; Message is the API's "error" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("veristay: status %d: %s", e.Status, e.Message)
}

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

var _ domain.HostelAPI = (*Client)(nil)

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// ---- Public API ----

type hostelPayload struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	PriceMin   int64    `json:"price_min"`
	PriceMax   int64    `json:"price_max"`
	Lat        float64  `json:"lat"`
	Long       float64  `json:"long"`
	Amenities  []string `json:"amenities"`
	Images     []string `json:"images"`
	IsVerified bool     `json:"is_verified"`
}

type reviewPayload struct {
	UserID  string  `json:"user_id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Health returns nil when GET /api/health answers 200.
func (c *Client) Health(ctx context.Context) error {
	var out map[string]string
	return c.do(ctx, "health", http.MethodGet, c.base+"/api/health", "", nil, &out)
}

func (c *Client) CreateHostel(ctx context.Context, in domain.HostelInput, key string) (domain.Hostel, error) {
	body := hostelPayload{
		Name: in.Name, Address: in.Address,
		PriceMin: in.PriceMin, PriceMax: in.PriceMax,
		Lat: in.Lat, Long: in.Long,
		Amenities: nonNil(in.Amenities), Images: nonNil(in.Images),
		IsVerified: in.IsVerified,
	}
	var out struct {
		Hostel domain.Hostel `json:"hostel"`
	}
	if err := c.do(ctx, "create_hostel", http.MethodPost, c.base+"/api/hostels", key, body, &out); err != nil {
		return domain.Hostel{}, fmt.Errorf("veristay.Client.CreateHostel: %w", err)
	}
	return out.Hostel, nil
}

func (c *Client) AddReview(ctx context.Context, hostelID int64, in domain.ReviewInput, key string) (domain.Review, error) {
	body := reviewPayload{UserID: in.UserID, Rating: in.Rating, Comment: in.Comment}
	url := fmt.Sprintf("%s/api/hostels/%d/reviews", c.base, hostelID)
	var out struct {
		Review domain.Review `json:"review"`
	}
	if err := c.do(ctx, "add_review", http.MethodPost, url, key, body, &out); err != nil {
		return domain.Review{}, fmt.Errorf("veristay.Client.AddReview: %w", err)
	}
	return out.Review, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ---- Internals ----

// do sends one call with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After when
// provided. POSTs are only retried safely because they carry an idempotency key.
func (c *Client) do(ctx context.Context, endpoint, method, url, key string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = b
	}

	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		// build a fresh request each attempt
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if key != "" {
			req.Header.Set("Idempotency-Key", key)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "veristay-seeder/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveClient(endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < maxAttempts-1 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveClient(endpoint, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < maxAttempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			return decodeAPIError(resp)
		}
	}

	return lastErr
}

func decodeAPIError(resp *http.Response) error {
	defer resp.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var eb struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(b))
	if json.Unmarshal(b, &eb) == nil && eb.Error != "" {
		msg = eb.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
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

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
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

// backoff: 200ms doubling per attempt, plus up to 50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
