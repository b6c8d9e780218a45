package pageroute

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// URLFor returns the browser URL of a route of the Pages serving ctx.
// Segments fill the catch-all of the Page route and are path escaped; the
// Serve route takes none.
//
//	URLFor(ctx, pageroute.KindServe)               // "/web/"
//	URLFor(ctx, pageroute.KindPage, "foo", "bar")  // "/web/foo/bar"
func URLFor(ctx context.Context, kind Kind, segments ...string) (string, error) {
	p := PagesFrom(ctx)
	if p == nil {
		return "", errors.New("urlfor: pages not found in context")
	}
	return p.URLFor(kind, segments...)
}

// URLFor returns the browser URL of the route of the given kind.
func (p *Pages) URLFor(kind Kind, segments ...string) (string, error) {
	return p.href(p.history, kind, segments...)
}

func (p *Pages) href(h History, kind Kind, segments ...string) (string, error) {
	route, ok := p.table.Route(kind)
	if !ok {
		return "", fmt.Errorf("urlfor: %w for %s", ErrNoRoute, kind)
	}
	routePath, err := formatPattern(route.Pattern, segments)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}
	return h.Href(routePath), nil
}

// formatPattern fills the catch-all of pattern with segments.
func formatPattern(pattern string, segments []string) (string, error) {
	parsed, err := parseSegments(pattern)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	filled := false
	for _, seg := range parsed {
		switch {
		case seg.name == "{$}":
		case seg.wildcard:
			for i, s := range segments {
				if s == "" {
					return "", fmt.Errorf("pattern %s: empty segment at %d", pattern, i)
				}
				if i > 0 {
					sb.WriteByte('/')
				}
				sb.WriteString(url.PathEscape(s))
			}
			filled = true
		case seg.param:
			return "", fmt.Errorf("pattern %s: unsupported parameter {%s}", pattern, seg.name)
		default:
			sb.WriteString(seg.name)
		}
	}
	if !filled && len(segments) > 0 {
		return "", fmt.Errorf("pattern %s: takes no segments, got %v", pattern, segments)
	}
	return sb.String(), nil
}
