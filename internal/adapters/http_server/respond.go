package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"veristay/internal/adapters/observability"
	"veristay/internal/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

var errBadJSON = errors.New("request body must be valid JSON")

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal JSON response failed")
		status, body = http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

// writeCacheable answers a GET with a weak ETag, or 304 when the client
// already holds that version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body, err := calcETagAndBody(v)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("marshal JSON response failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("write JSON response failed")
	}
}

// etagMatches applies the weak comparison If-None-Match calls for: "*"
// matches anything, otherwise any listed tag equal to etag once the W/
// prefix is ignored.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == want {
			return true
		}
	}
	return false
}

// decodeBody reads one JSON value. Numbers stay json.Number so validators
// can tell integers from fractions.
func decodeBody(r *http.Request) (any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errBadJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errBadJSON
	}
	return v, nil
}

// fail maps a decode or service error onto a response. resource labels the
// validation metric, notFound is the 404 message.
func fail(w http.ResponseWriter, r *http.Request, resource, notFound string, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, errBadJSON):
		observability.ObserveValidationFailure(resource)
		writeError(w, http.StatusBadRequest, "Request body must be valid JSON")
	case errors.Is(err, domain.ErrValidation):
		observability.ObserveValidationFailure(resource)
		msg, _ := domain.ValidationMessage(err)
		writeError(w, http.StatusBadRequest, msg)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("resource", resource).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
