package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackielii/pageroute"
	"github.com/stretchr/testify/require"
)

var (
	okPage = pageroute.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	})
	failPage = pageroute.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errors.New("boom")
	})
)

// mount serves the web table with the given page component and middlewares.
func mount(t *testing.T, page pageroute.Component, mws ...pageroute.MiddlewareFunc) http.Handler {
	t.Helper()
	p, err := pageroute.New(pageroute.WebVariant, okPage, page,
		pageroute.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		pageroute.WithMiddlewares(mws...))
	require.NoError(t, err)
	mux := http.NewServeMux()
	require.NoError(t, p.Mount(pageroute.NewRouter(mux)))
	return mux
}

func get(h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
