package pageroute

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/jackielii/ctxkey"
)

var testCtxKey = ctxkey.New("middleware.test.key", "")

func makeOrderMiddleware(name string) MiddlewareFunc {
	return func(next http.Handler, route *Route) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprintf(w, "%s(%s),", name, route.Name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestMiddlewareOrder(t *testing.T) {
	_, h := mustMount(t, WebVariant, testComponent{"serve"}, testComponent{"page"},
		WithMiddlewares(makeOrderMiddleware("inner"), makeOrderMiddleware("outer")))

	if got, want := get(h, "/web/").Body.String(), "outer(serve),inner(serve),serve"; got != want {
		t.Errorf("body %q, want %q", got, want)
	}
	if got, want := get(h, "/web/a").Body.String(), "outer(page),inner(page),page:a"; got != want {
		t.Errorf("body %q, want %q", got, want)
	}
}

func TestMiddlewareContext(t *testing.T) {
	setValue := func(next http.Handler, route *Route) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(testCtxKey.WithValue(r.Context(), "from middleware")))
		})
	}
	page := ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, testCtxKey.Value(ctx))
		return err
	})
	_, h := mustMount(t, WebVariant, testComponent{"serve"}, page, WithMiddlewares(setValue))
	if got := get(h, "/web/x").Body.String(); got != "from middleware" {
		t.Errorf("body %q, want %q", got, "from middleware")
	}
}

func TestMiddlewareShortCircuit(t *testing.T) {
	deny := func(next http.Handler, route *Route) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route.Kind == KindPage {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
	_, h := mustMount(t, WebVariant, testComponent{"serve"}, testComponent{"page"}, WithMiddlewares(deny))
	if rec := get(h, "/web/secret"); rec.Code != http.StatusForbidden {
		t.Errorf("status %d, want 403", rec.Code)
	}
	if rec := get(h, "/web/"); rec.Code != http.StatusOK {
		t.Errorf("status %d, want 200", rec.Code)
	}
}
