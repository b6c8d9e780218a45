package pageroute

import (
	"context"

	"github.com/jackielii/ctxkey"
)

var (
	pagesCtx    = ctxkey.New[*Pages]("pageroute.pages", nil)
	routeCtx    = ctxkey.New[*Route]("pageroute.route", nil)
	wildcardCtx = ctxkey.New[[]string]("pageroute.wildcard", nil)
)

func withRequest(ctx context.Context, p *Pages, route *Route, wildcard []string) context.Context {
	ctx = pagesCtx.WithValue(ctx, p)
	ctx = routeCtx.WithValue(ctx, route)
	return wildcardCtx.WithValue(ctx, wildcard)
}

// PagesFrom returns the Pages serving the current request, or nil.
func PagesFrom(ctx context.Context) *Pages {
	return pagesCtx.Value(ctx)
}

// RouteFrom returns the route serving the current request, or nil.
func RouteFrom(ctx context.Context) *Route {
	return routeCtx.Value(ctx)
}

// WildcardFrom returns the path segments captured by the catch-all route. It is
// empty when the literal route is being rendered.
func WildcardFrom(ctx context.Context) []string {
	return wildcardCtx.Value(ctx)
}
