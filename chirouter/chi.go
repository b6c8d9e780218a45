// Package chirouter mounts pageroute tables on a chi router.
package chirouter

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/pageroute"
)

type chiRouter struct {
	router chi.Router
	// bare subtree paths that already redirect to their slash form
	redirects map[string]bool
}

// NewChiRouter wraps r so it can be passed to Pages.Mount.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r, redirects: map[string]bool{}}
}

// HandleMethod registers handler for a ServeMux style pattern. {$} becomes an
// exact trailing slash route and {name...} becomes chi's catch-all; the
// captured value is copied into r.PathValue(name).
//
// Like ServeMux, unclean request paths are redirected to their cleaned form and
// a subtree path without its trailing slash is redirected to the subtree.
func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	pattern, wildcard := translatePattern(pattern)
	if wildcard != "" {
		next := handler
		handler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			req.SetPathValue(wildcard, chi.URLParam(req, "*"))
			next.ServeHTTP(w, req)
		})
	}
	r.handle(method, pattern, cleanPaths(handler))

	if bare := subtreeRoot(pattern); bare != "" && !r.redirects[method+" "+bare] {
		r.redirects[method+" "+bare] = true
		r.handle(method, bare, cleanPaths(http.HandlerFunc(redirectSubtree)))
	}
}

func (r *chiRouter) handle(method, pattern string, handler http.Handler) {
	if method == "ALL" || method == "" {
		r.router.Handle(pattern, handler)
	} else {
		r.router.Method(method, pattern, handler)
	}
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// translatePattern converts a ServeMux pattern to chi syntax and returns the
// name of its catch-all parameter, if any.
func translatePattern(pattern string) (string, string) {
	if p, ok := strings.CutSuffix(pattern, "{$}"); ok {
		return p, ""
	}
	start := strings.LastIndex(pattern, "{")
	if start == -1 || !strings.HasSuffix(pattern, "...}") {
		return pattern, ""
	}
	name := strings.TrimSuffix(pattern[start+1:], "...}")
	return pattern[:start] + "*", name
}

// subtreeRoot returns the path without trailing slash of a chi pattern that
// ends in a slash or catch-all, or "" for other patterns and the root.
func subtreeRoot(pattern string) string {
	p := strings.TrimSuffix(pattern, "*")
	if !strings.HasSuffix(p, "/") || p == "/" || strings.ContainsAny(p, "{}") {
		return ""
	}
	return strings.TrimSuffix(p, "/")
}

func redirectSubtree(w http.ResponseWriter, req *http.Request) {
	u := &url.URL{Path: req.URL.Path + "/", RawQuery: req.URL.RawQuery}
	http.Redirect(w, req, u.String(), http.StatusMovedPermanently)
}

// cleanPaths redirects requests whose path contains empty, . or .. elements.
// chi's middleware.CleanPath only rewrites the routing path, and
// middleware.RedirectSlashes strips trailing slashes, which would undo {$}.
func cleanPaths(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if p := cleanPath(req.URL.Path); p != req.URL.Path {
			u := &url.URL{Path: p, RawQuery: req.URL.RawQuery}
			http.Redirect(w, req, u.String(), http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// cleanPath returns the canonical path for p, keeping a trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	if strings.HasSuffix(p, "/") && np != "/" {
		np += "/"
	}
	return np
}

var _ pageroute.Router = (*chiRouter)(nil)
