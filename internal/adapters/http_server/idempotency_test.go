package httpserver_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "veristay/internal/adapters/http_server"
	redisad "veristay/internal/adapters/redis"
)

func idempotentRouter(t *testing.T) (http.Handler, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })
	return newRouter(t, httpserver.Options{Idempotency: cache, IdempotencyTTL: time.Minute}), mr
}

func TestIdempotency_ReplaysFirstResponse(t *testing.T) {
	h, _ := idempotentRouter(t)

	first := do(t, h, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`, "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get("Idempotent-Replayed"))

	second := do(t, h, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`, "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	list := decode(t, do(t, h, http.MethodGet, "/api/todos", ""))
	assert.Equal(t, 1.0, list["count"])
}

func TestIdempotency_DistinctKeysCreateTwice(t *testing.T) {
	h, _ := idempotentRouter(t)

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/todos", `{"title":"a"}`, "Idempotency-Key", "k-1").Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/todos", `{"title":"a"}`, "Idempotency-Key", "k-2").Code)

	assert.Equal(t, 2.0, decode(t, do(t, h, http.MethodGet, "/api/todos", ""))["count"])
}

func TestIdempotency_FailuresAreNotStored(t *testing.T) {
	h, _ := idempotentRouter(t)

	bad := do(t, h, http.MethodPost, "/api/todos", `{}`, "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusBadRequest, bad.Code)

	good := do(t, h, http.MethodPost, "/api/todos", `{"title":"fixed"}`, "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusCreated, good.Code)
	assert.Empty(t, good.Header().Get("Idempotent-Replayed"))
}

func TestIdempotency_ScopedToPath(t *testing.T) {
	h, _ := idempotentRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/hostels", hostelBody, "Idempotency-Key", "same").Code)

	rec := do(t, h, http.MethodPost, "/api/hostels/1/reviews", `{"user_id":"u","rating":5}`, "Idempotency-Key", "same")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Review added successfully", decode(t, rec)["message"])
}

func TestIdempotency_CacheDownFallsThrough(t *testing.T) {
	h, mr := idempotentRouter(t)
	mr.Close()

	rec := do(t, h, http.MethodPost, "/api/todos", `{"title":"a"}`, "Idempotency-Key", "k-1")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIdempotency_KeyTooLong(t *testing.T) {
	h, _ := idempotentRouter(t)

	rec := do(t, h, http.MethodPost, "/api/todos", `{"title":"a"}`, "Idempotency-Key", strings.Repeat("k", 256))

	requireError(t, rec, http.StatusBadRequest, "Idempotency-Key must be 255 characters or less")
}

func TestIdempotency_HeaderIgnoredWithoutCache(t *testing.T) {
	h := newRouter(t, httpserver.Options{})

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/todos", `{"title":"a"}`, "Idempotency-Key", "k").Code)
	second := do(t, h, http.MethodPost, "/api/todos", `{"title":"a"}`, "Idempotency-Key", "k")

	require.Equal(t, http.StatusCreated, second.Code)
	assert.Empty(t, second.Header().Get("Idempotent-Replayed"))
}
