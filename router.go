package pageroute

import (
	"net/http"
)

// Router is an interface for registering HTTP routes.
// Patterns use the [http.ServeMux] syntax: {$} anchors a trailing slash and
// {name...} is a catch-all. Adapters for other routers translate them.
type Router interface {
	HandleMethod(method, pattern string, handler http.Handler)
}

const methodAll = "ALL"

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
// Example:
//
//	mux := http.NewServeMux()
//	router := pageroute.NewRouter(mux)
//	pages.Mount(router)
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
