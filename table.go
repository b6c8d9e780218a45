package pageroute

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind tells which of the two table components a route renders.
type Kind int

const (
	// KindServe is the index view rendered for the prefix itself.
	KindServe Kind = iota
	// KindPage is the view rendered for every path below the prefix.
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindServe:
		return "Serve"
	case KindPage:
		return "Page"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// WildcardParam is the name of the catch-all path parameter.
const WildcardParam = "wildcard"

// Route is one entry of the route table.
type Route struct {
	Name      string
	Kind      Kind
	Pattern   string
	Component Component
}

func (r Route) String() string {
	var sb strings.Builder
	sb.WriteString("Route{")
	sb.WriteString("\n  name: " + r.Name)
	sb.WriteString("\n  kind: " + r.Kind.String())
	sb.WriteString("\n  pattern: " + r.Pattern)
	if r.Component == nil {
		sb.WriteString("\n  component: <nil>")
	} else {
		fmt.Fprintf(&sb, "\n  component: %T", r.Component)
	}
	sb.WriteString("\n}")
	return sb.String()
}

// Match is the result of resolving a path against a Table.
type Match struct {
	Route *Route
	// Wildcard holds the unescaped segments captured by the catch-all route.
	// It is empty for the literal route.
	Wildcard []string
}

// Table is an ordered route table for a single prefix. It is not modified after
// construction.
type Table struct {
	prefix string
	routes []*Route
}

// NewTable registers prefix -> serve followed by prefix/{wildcard...} -> page.
func NewTable(prefix string, serve, page Component) *Table {
	prefix = NormalizePrefix(prefix)
	return &Table{
		prefix: prefix,
		routes: []*Route{
			{Name: "serve", Kind: KindServe, Pattern: prefix + "{$}", Component: serve},
			{Name: "page", Kind: KindPage, Pattern: prefix + "{" + WildcardParam + "...}", Component: page},
		},
	}
}

// Prefix returns the normalized prefix of the table.
func (t *Table) Prefix() string { return t.prefix }

// Routes returns a copy of the routes in table order.
func (t *Table) Routes() []Route {
	routes := make([]Route, len(t.routes))
	for i, r := range t.routes {
		routes[i] = *r
	}
	return routes
}

// Route returns the first route of the given kind.
func (t *Table) Route(kind Kind) (*Route, bool) {
	for _, r := range t.routes {
		if r.Kind == kind {
			return r, true
		}
	}
	return nil, false
}

// Validate checks that every pattern parses and that no catch-all route is
// ordered before the literal route of the same prefix.
func (t *Table) Validate() error {
	seen := make(map[string]int) // catch-all prefix -> index
	for i, r := range t.routes {
		if r.Pattern == "" {
			return fmt.Errorf("route %s: empty pattern", r.Name)
		}
		if r.Component == nil {
			return fmt.Errorf("route %s: nil component", r.Name)
		}
		segments, err := parseSegments(r.Pattern)
		if err != nil {
			return fmt.Errorf("route %s: %w", r.Name, err)
		}
		prefix := literalPrefix(segments)
		if isCatchAll(segments) {
			seen[prefix] = i
			continue
		}
		if j, ok := seen[prefix]; ok {
			return fmt.Errorf("%w: %s (index %d) before %s (index %d)",
				ErrShadowedRoute, t.routes[j].Pattern, j, r.Pattern, i)
		}
	}
	return nil
}

// Match resolves an escaped route path. The first route in table order that
// accepts the path wins: the literal route accepts the prefix with no further
// non-empty segments, the catch-all route accepts anything below the prefix.
func (t *Table) Match(p string) (Match, bool) {
	rest, ok := t.cut(p)
	if !ok {
		return Match{}, false
	}
	wildcard := splitSegments(rest)
	for _, r := range t.routes {
		switch r.Kind {
		case KindServe:
			if len(wildcard) == 0 {
				return Match{Route: r}, true
			}
		case KindPage:
			return Match{Route: r, Wildcard: wildcard}, true
		}
	}
	return Match{}, false
}

func (t *Table) cut(p string) (string, bool) {
	p = ensureLeadingSlash(p)
	if t.prefix != "/" && p == strings.TrimSuffix(t.prefix, "/") {
		return "", true
	}
	return strings.CutPrefix(p, t.prefix)
}

// splitSegments splits an escaped path into unescaped, non-empty segments.
func splitSegments(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s == "" {
			continue
		}
		if u, err := url.PathUnescape(s); err == nil {
			s = u
		}
		segments = append(segments, s)
	}
	return segments
}
