package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"filescan/pkg/controller"
)

func TestWithMaxBody_UnderLimit(t *testing.T) {
	var got []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = body
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small"))
	rec := httptest.NewRecorder()

	controller.WithMaxBody(10)(next).ServeHTTP(rec, req)

	require.Equal(t, "small", string(got))
}

func TestWithMaxBody_OverLimit(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 32)))
	rec := httptest.NewRecorder()

	controller.WithMaxBody(10)(next).ServeHTTP(rec, req)

	require.Error(t, readErr)
	var maxErr *http.MaxBytesError
	require.ErrorAs(t, readErr, &maxErr)
	require.Equal(t, int64(10), maxErr.Limit)
}

func TestWithMaxBody_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Len(t, body, 32)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 32)))
	rec := httptest.NewRecorder()

	controller.WithMaxBody(0)(next).ServeHTTP(rec, req)
}
