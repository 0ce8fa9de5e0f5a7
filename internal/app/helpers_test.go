package app_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"veristay/internal/domain"
)

// body decodes src the way the HTTP adapter does.
func body(t *testing.T, src string) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(src))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

// requireInvalid asserts err is a validation error carrying msg.
func requireInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidation)
	got, ok := domain.ValidationMessage(err)
	require.True(t, ok)
	require.Equal(t, msg, got)
}
