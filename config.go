package pageroute

import (
	"fmt"
	"strings"
)

// Config parameterizes a route table: the path prefix it lives under and how
// browser history is bound to it.
type Config struct {
	// Name identifies the configuration in logs and route listings.
	Name string
	// Prefix is the path prefix P. The literal route is P and the catch-all
	// route is everything below P.
	Prefix string
	// Mode selects path based or fragment based history.
	Mode HistoryMode
	// ScopedHistory binds the history base to Prefix. When false the history
	// base is the root.
	ScopedHistory bool
}

// The two deployed configurations. PagesVariant scopes history to its prefix,
// so its routes are reachable below /pages/pages/; WebVariant keeps history at
// the root.
var (
	PagesVariant = Config{Name: "pages", Prefix: "/pages/", ScopedHistory: true}
	WebVariant   = Config{Name: "web", Prefix: "/web/"}
)

// Variant returns the preset configuration with the given name.
func Variant(name string) (Config, bool) {
	switch strings.ToLower(name) {
	case PagesVariant.Name:
		return PagesVariant, true
	case WebVariant.Name:
		return WebVariant, true
	}
	return Config{}, false
}

// History returns the history binding for this configuration.
func (c Config) History() History {
	h := History{Mode: c.Mode, Base: "/"}
	if c.ScopedHistory {
		h.Base = NormalizePrefix(c.Prefix)
	}
	return h
}

// BaseMismatch reports whether both the history base and the route prefix are
// non-root, which puts every route twice below the prefix (/pages/pages/...).
func (c Config) BaseMismatch() bool {
	return c.History().Base != "/" && NormalizePrefix(c.Prefix) != "/"
}

// Validate checks that the prefix is a plain path and the history mode is known.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Prefix, "{}#?") {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, c.Prefix)
	}
	if c.Mode != HistoryWeb && c.Mode != HistoryHash {
		return fmt.Errorf("%w: %s", ErrInvalidHistory, c.Mode)
	}
	return nil
}
