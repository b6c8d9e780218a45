package pageroute

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// HistoryMode selects how routes are encoded in browser URLs.
type HistoryMode int

const (
	// HistoryWeb encodes the route in the URL path below the history base.
	HistoryWeb HistoryMode = iota
	// HistoryHash encodes the route in the URL fragment. The browser loads the
	// shell at the history base, which fetches the route from its server path.
	HistoryHash
)

func (m HistoryMode) String() string {
	switch m {
	case HistoryWeb:
		return "web"
	case HistoryHash:
		return "hash"
	default:
		return fmt.Sprintf("HistoryMode(%d)", int(m))
	}
}

// ParseHistoryMode parses "web" or "hash". An empty string is HistoryWeb.
func ParseHistoryMode(s string) (HistoryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "web", "path":
		return HistoryWeb, nil
	case "hash":
		return HistoryHash, nil
	}
	return HistoryWeb, fmt.Errorf("unknown history mode %q", s)
}

// History is the browser history integration: the mode and the base path the
// route table is mounted under.
type History struct {
	Mode HistoryMode
	Base string
}

// Href returns the browser URL addressing routePath.
func (h History) Href(routePath string) string {
	base := NormalizePrefix(h.Base)
	if h.Mode == HistoryHash {
		return base + "#" + ensureLeadingSlash(routePath)
	}
	return joinPath(base, routePath)
}

// Location returns the escaped route path addressed by a request URL, or false
// when the URL is outside the history base.
func (h History) Location(u *url.URL) (string, bool) {
	base := NormalizePrefix(h.Base)
	p := u.EscapedPath()
	if p == "" {
		p = "/"
	}
	if h.Mode == HistoryHash {
		if p != base && p != strings.TrimSuffix(base, "/") {
			return "", false
		}
		if u.Fragment == "" {
			return "/", true
		}
		return ensureLeadingSlash(u.EscapedFragment()), true
	}
	if base == "/" {
		return p, true
	}
	if p == strings.TrimSuffix(base, "/") {
		return "/", true
	}
	if !strings.HasPrefix(p, base) {
		return "", false
	}
	return "/" + strings.TrimPrefix(p, base), true
}

// mount returns the router pattern for a table pattern under this history.
func (h History) mount(pattern string) string {
	return joinPath(NormalizePrefix(h.Base), pattern)
}

// NormalizePrefix makes sure p starts and ends with a slash.
func NormalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "/"
	}
	p = path.Clean(ensureLeadingSlash(p))
	if p == "/" {
		return p
	}
	return p + "/"
}

// joinPath joins base and p without cleaning, so trailing slashes and router
// placeholders such as {$} survive.
func joinPath(base, p string) string {
	return strings.TrimSuffix(base, "/") + ensureLeadingSlash(p)
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
