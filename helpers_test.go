package pageroute

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testComponent renders its name followed by the captured wildcard.
type testComponent struct {
	name string
}

func (c testComponent) Render(ctx context.Context, w io.Writer) error {
	if wc := WildcardFrom(ctx); len(wc) > 0 {
		_, err := fmt.Fprintf(w, "%s:%s", c.name, strings.Join(wc, "/"))
		return err
	}
	_, err := io.WriteString(w, c.name)
	return err
}

// targetComponent renders a fragment for the "content" target.
type targetComponent struct {
	full, part string
}

func (c targetComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, c.full)
	return err
}

func (c targetComponent) Target(id string) (Component, bool) {
	if id != "content" {
		return nil, false
	}
	return ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, c.part)
		return err
	}), true
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustMount(t *testing.T, cfg Config, serve, page Component, opts ...Option) (*Pages, http.Handler) {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	p, err := New(cfg, serve, page, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	router := NewRouter(http.NewServeMux())
	if err := p.Mount(router); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	return p, router
}

func get(h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
