package pageroute

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "/pages/", want: []string{"/pages/{$}", "/pages/{wildcard...}"}},
		{prefix: "/web/", want: []string{"/web/{$}", "/web/{wildcard...}"}},
		{prefix: "web", want: []string{"/web/{$}", "/web/{wildcard...}"}},
		{prefix: "", want: []string{"/{$}", "/{wildcard...}"}},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			table := NewTable(tt.prefix, testComponent{"serve"}, testComponent{"page"})
			var got []string
			for _, r := range table.Routes() {
				got = append(got, r.Pattern)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("patterns mismatch (-want +got):\n%s", diff)
			}
			routes := table.Routes()
			if routes[0].Kind != KindServe || routes[1].Kind != KindPage {
				t.Errorf("expected Serve before Page, got %s, %s", routes[0].Kind, routes[1].Kind)
			}
			if err := table.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestTableMatch(t *testing.T) {
	table := NewTable("/web/", testComponent{"serve"}, testComponent{"page"})
	tests := []struct {
		path     string
		ok       bool
		kind     Kind
		wildcard []string
	}{
		{path: "/web/", ok: true, kind: KindServe},
		{path: "/web", ok: true, kind: KindServe},
		{path: "/web//", ok: true, kind: KindServe},
		{path: "/web/foo", ok: true, kind: KindPage, wildcard: []string{"foo"}},
		{path: "/web/foo/bar", ok: true, kind: KindPage, wildcard: []string{"foo", "bar"}},
		{path: "/web/foo/", ok: true, kind: KindPage, wildcard: []string{"foo"}},
		{path: "/web/a%20b", ok: true, kind: KindPage, wildcard: []string{"a b"}},
		{path: "/web/a%2Fb", ok: true, kind: KindPage, wildcard: []string{"a/b"}},
		{path: "web/x", ok: true, kind: KindPage, wildcard: []string{"x"}},
		{path: "/webx", ok: false},
		{path: "/", ok: false},
		{path: "/pages/foo", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := table.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if !ok {
				return
			}
			if m.Route.Kind != tt.kind {
				t.Errorf("Match(%q) kind = %s, want %s", tt.path, m.Route.Kind, tt.kind)
			}
			if diff := cmp.Diff(tt.wildcard, m.Wildcard); diff != "" {
				t.Errorf("wildcard mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableMatchRootPrefix(t *testing.T) {
	table := NewTable("/", testComponent{"serve"}, testComponent{"page"})
	if m, ok := table.Match("/"); !ok || m.Route.Kind != KindServe {
		t.Errorf("Match(/) = %v, %v; want Serve", m.Route, ok)
	}
	m, ok := table.Match("/a/b")
	if !ok || m.Route.Kind != KindPage {
		t.Fatalf("Match(/a/b) = %v, %v; want Page", m.Route, ok)
	}
	if diff := cmp.Diff([]string{"a", "b"}, m.Wildcard); diff != "" {
		t.Errorf("wildcard mismatch (-want +got):\n%s", diff)
	}
}

func TestTableValidate(t *testing.T) {
	serve := &Route{Name: "serve", Kind: KindServe, Pattern: "/web/{$}", Component: testComponent{"serve"}}
	page := &Route{Name: "page", Kind: KindPage, Pattern: "/web/{wildcard...}", Component: testComponent{"page"}}

	t.Run("catch-all first", func(t *testing.T) {
		table := &Table{prefix: "/web/", routes: []*Route{page, serve}}
		err := table.Validate()
		if !errors.Is(err, ErrShadowedRoute) {
			t.Fatalf("expected ErrShadowedRoute, got %v", err)
		}
	})
	t.Run("different prefixes", func(t *testing.T) {
		other := &Route{Name: "other", Kind: KindServe, Pattern: "/pages/{$}", Component: testComponent{"other"}}
		table := &Table{prefix: "/web/", routes: []*Route{page, other}}
		if err := table.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	t.Run("nil component", func(t *testing.T) {
		table := NewTable("/web/", nil, testComponent{"page"})
		err := table.Validate()
		if err == nil || !strings.Contains(err.Error(), "nil component") {
			t.Errorf("expected nil component error, got %v", err)
		}
	})
	t.Run("bad pattern", func(t *testing.T) {
		bad := &Route{Name: "bad", Kind: KindPage, Pattern: "/web/{rest", Component: testComponent{"bad"}}
		table := &Table{prefix: "/web/", routes: []*Route{serve, bad}}
		if err := table.Validate(); err == nil {
			t.Error("expected error for unmatched {")
		}
	})
}

func TestTableRoutesIsCopy(t *testing.T) {
	table := NewTable("/web/", testComponent{"serve"}, testComponent{"page"})
	routes := table.Routes()
	routes[0].Pattern = "/changed"
	if got := table.Routes()[0].Pattern; got != "/web/{$}" {
		t.Errorf("table modified through Routes: %s", got)
	}
}

func TestRouteString(t *testing.T) {
	r := Route{Name: "page", Kind: KindPage, Pattern: "/web/{wildcard...}", Component: testComponent{"page"}}
	want := "Route{\n  name: page\n  kind: Page\n  pattern: /web/{wildcard...}\n  component: pageroute.testComponent\n}"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Route{Name: "x"}).String(); !strings.Contains(got, "component: <nil>") {
		t.Errorf("String() = %q, want nil component", got)
	}
}

func TestKindString(t *testing.T) {
	if KindServe.String() != "Serve" || KindPage.String() != "Page" {
		t.Errorf("unexpected kind names %s, %s", KindServe, KindPage)
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind(7).String() = %q", got)
	}
}
