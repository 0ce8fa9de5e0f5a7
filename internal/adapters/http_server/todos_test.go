package httpserver_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "veristay/internal/adapters/http_server"
)

func TestTodos_BuyMilkScenario(t *testing.T) {
	h := newRouter(t, httpserver.Options{})

	rec := do(t, h, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, "Todo created successfully", created["message"])
	todo := created["todo"].(map[string]any)
	assert.Equal(t, 1.0, todo["id"])
	assert.Equal(t, "Buy milk", todo["title"])
	assert.Equal(t, "", todo["description"])
	assert.Equal(t, false, todo["completed"])
	assert.NotEmpty(t, todo["created_at"])
	assert.NotEmpty(t, todo["updated_at"])

	rec = do(t, h, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)
	assert.Equal(t, 1.0, list["count"])
	assert.Len(t, list["todos"], 1)

	rec = do(t, h, http.MethodPut, "/api/todos/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "Todo updated successfully", updated["message"])
	assert.Equal(t, true, updated["todo"].(map[string]any)["completed"])
	assert.Equal(t, "Buy milk", updated["todo"].(map[string]any)["title"])

	rec = do(t, h, http.MethodGet, "/api/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["todo"].(map[string]any)["completed"])

	rec = do(t, h, http.MethodDelete, "/api/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Todo deleted successfully"}, decode(t, rec))

	requireError(t, do(t, h, http.MethodGet, "/api/todos/1", ""), http.StatusNotFound, "Todo not found")
	requireError(t, do(t, h, http.MethodDelete, "/api/todos/1", ""), http.StatusNotFound, "Todo not found")

	rec = do(t, h, http.MethodGet, "/api/todos", "")
	assert.Equal(t, map[string]any{"todos": []any{}, "count": 0.0}, decode(t, rec))
}

func TestTodos_ValidationErrors(t *testing.T) {
	h := newRouter(t, httpserver.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/todos", `{"title":"x"}`).Code)

	cases := []struct {
		name, method, path, body, msg string
	}{
		{"missing title", http.MethodPost, "/api/todos", `{"description":"d"}`, "Title is required"},
		{"long title", http.MethodPost, "/api/todos", `{"title":"` + strings.Repeat("a", 201) + `"}`, "Title must be 200 characters or less"},
		{"bad json", http.MethodPost, "/api/todos", `{"title":`, "Request body must be valid JSON"},
		{"trailing data", http.MethodPost, "/api/todos", `{"title":"a"} {}`, "Request body must be valid JSON"},
		{"empty update", http.MethodPut, "/api/todos/1", `{}`, "At least one field must be provided for update"},
		{"unexpected field", http.MethodPut, "/api/todos/1", `{"title":"x","extra":1}`, "Unexpected fields: extra"},
		{"non-numeric id", http.MethodGet, "/api/todos/abc", "", "Todo ID must be a valid integer"},
		{"zero id", http.MethodDelete, "/api/todos/0", "", "Todo ID must be a positive integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireError(t, do(t, h, tc.method, tc.path, tc.body), http.StatusBadRequest, tc.msg)
		})
	}
}

func TestTodos_EmptyBodyIsInvalidJSON(t *testing.T) {
	h := newRouter(t, httpserver.Options{})

	requireError(t, do(t, h, http.MethodPost, "/api/todos", ""), http.StatusBadRequest, "Request body must be valid JSON")
}

func TestTodos_UpdateMissing(t *testing.T) {
	h := newRouter(t, httpserver.Options{})

	requireError(t, do(t, h, http.MethodPut, "/api/todos/9", `{"title":"x"}`), http.StatusNotFound, "Todo not found")
}

func TestTodos_IDBeyondInt64IsNotFound(t *testing.T) {
	h := newRouter(t, httpserver.Options{})

	requireError(t, do(t, h, http.MethodPut, "/api/todos/99999999999999999999", `{"title":"x"}`),
		http.StatusNotFound, "Todo not found")
	requireError(t, do(t, h, http.MethodGet, "/api/hostels/99999999999999999999", ""),
		http.StatusNotFound, "Hostel not found")
}

func TestTodos_ETag(t *testing.T) {
	h := newRouter(t, httpserver.Options{})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/todos", `{"title":"x"}`).Code)

	first := do(t, h, http.MethodGet, "/api/todos/1", "")
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	again := do(t, h, http.MethodGet, "/api/todos/1", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, again.Code)
	assert.Empty(t, again.Body.String())

	strong := strings.TrimPrefix(etag, "W/")
	for _, inm := range []string{strong, `"other", ` + etag, "*"} {
		rec := do(t, h, http.MethodGet, "/api/todos/1", "", "If-None-Match", inm)
		assert.Equal(t, http.StatusNotModified, rec.Code, inm)
	}
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/todos/1", "", "If-None-Match", `"other"`).Code)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, "/api/todos/1", `{"completed":true}`).Code)
	changed := do(t, h, http.MethodGet, "/api/todos/1", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusOK, changed.Code)
	assert.NotEqual(t, etag, changed.Header().Get("ETag"))
}
