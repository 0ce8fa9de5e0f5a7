package httpserver

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"veristay/internal/domain"
)

const (
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "Idempotent-Replayed"
	maxIdempotencyKey = 255
)

// storedResponse is what the cache keeps per idempotency key.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// capture tees the response into a buffer while passing it through.
type capture struct {
	srw
	buf bytes.Buffer
}

func (c *capture) Write(b []byte) (int, error) {
	c.buf.Write(b)
	return c.srw.Write(b)
}

// Idempotency replays the first successful response for a repeated
// Idempotency-Key on the same method and path. Cache failures are logged and
// the request goes through as if no key had been sent.
func Idempotency(cache domain.Cache, ttl time.Duration) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	ttlSec := int(ttl / time.Second)

	return func(next http.Handler) http.Handler {
		if cache == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(idempotencyHeader))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > maxIdempotencyKey {
				writeError(w, http.StatusBadRequest, "Idempotency-Key must be 255 characters or less")
				return
			}

			ctx := r.Context()
			lg := zerolog.Ctx(ctx)
			cacheKey := "idem:" + r.Method + ":" + r.URL.Path + ":" + key

			var prev storedResponse
			found, err := cache.Get(ctx, cacheKey, &prev)
			if err != nil {
				lg.Warn().Err(err).Msg("idempotency lookup failed")
			}
			if found {
				if prev.ContentType != "" {
					w.Header().Set("Content-Type", prev.ContentType)
				}
				w.Header().Set(replayedHeader, "true")
				w.WriteHeader(prev.Status)
				_, _ = w.Write(prev.Body)
				return
			}

			cw := &capture{srw: srw{ResponseWriter: w}}
			next.ServeHTTP(cw, r)

			status := cw.Status()
			if status < 200 || status > 299 {
				return
			}
			rec := storedResponse{Status: status, ContentType: w.Header().Get("Content-Type"), Body: cw.buf.Bytes()}
			if err := cache.Set(ctx, cacheKey, rec, ttlSec); err != nil {
				lg.Warn().Err(err).Msg("idempotency store failed")
			}
		})
	}
}
