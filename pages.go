package pageroute

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// MiddlewareFunc wraps the handler of a single route.
type MiddlewareFunc = func(http.Handler, *Route) http.Handler

// Pages is a route table bound to a history base, ready to be mounted.
type Pages struct {
	cfg         Config
	table       *Table
	history     History
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	logger      *slog.Logger
	strict      bool
}

// Option configures Pages.
type Option func(*Pages)

// WithErrorHandler replaces the handler called when a component fails to render.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(p *Pages) {
		p.onError = onError
	}
}

// WithMiddlewares appends middlewares applied to every route. The last one is
// the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(p *Pages) {
		p.middlewares = append(p.middlewares, middlewares...)
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pages) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStrictHistory makes New fail with ErrBaseMismatch instead of logging a
// warning when the history base and the route prefix are both non-root.
func WithStrictHistory() Option {
	return func(p *Pages) {
		p.strict = true
	}
}

// New builds the route table for cfg and binds it to the configured history.
func New(cfg Config, serve, page Component, options ...Option) (*Pages, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pageroute: %w", err)
	}
	p := &Pages{
		cfg:     cfg,
		table:   NewTable(cfg.Prefix, serve, page),
		history: cfg.History(),
		logger:  slog.Default(),
	}
	p.onError = p.defaultErrorHandler
	for _, opt := range options {
		opt(p)
	}
	if err := p.table.Validate(); err != nil {
		return nil, fmt.Errorf("pageroute: %w", err)
	}
	if cfg.BaseMismatch() {
		if p.strict {
			return nil, fmt.Errorf("pageroute: %w: base %s, prefix %s",
				ErrBaseMismatch, p.history.Base, p.table.Prefix())
		}
		p.logger.Warn("history base doubles the route prefix",
			"config", cfg.Name,
			"base", p.history.Base,
			"prefix", p.table.Prefix(),
			"index_url", p.history.Href(p.table.Prefix()))
	}
	return p, nil
}

// Config returns the configuration the table was built from.
func (p *Pages) Config() Config { return p.cfg }

// Table returns the route table.
func (p *Pages) Table() *Table { return p.table }

// History returns the history binding.
func (p *Pages) History() History { return p.history }

// Mount registers the routes on router under the history base, in table order.
// In hash mode the base additionally serves the shell, which renders Serve and
// loads the route named by the fragment from its server path.
func (p *Pages) Mount(router Router) error {
	if router == nil {
		return errors.New("pageroute: nil router")
	}
	for _, route := range p.table.routes {
		pattern := p.history.mount(route.Pattern)
		p.logger.Debug("registering route", "name", route.Name, "pattern", pattern, "history", p.history.Mode)
		router.HandleMethod(http.MethodGet, pattern, p.wrap(route))
	}
	if shell, ok := p.ShellPattern(); ok {
		p.logger.Debug("registering shell", "pattern", shell, "history", p.history.Mode)
		router.HandleMethod(http.MethodGet, shell, p.wrap(p.serve()))
	}
	return nil
}

// Resolve returns the route a browser URL resolves to without going through a
// router.
func (p *Pages) Resolve(u *url.URL) (Match, bool) {
	loc, ok := p.history.Location(u)
	if !ok {
		return Match{}, false
	}
	return p.table.Match(loc)
}

// MountedPattern returns the server pattern a route is registered with.
func (p *Pages) MountedPattern(route Route) string {
	return p.history.mount(route.Pattern)
}

// ShellPattern returns the pattern of the hash history shell. It reports false
// in web mode, or when the shell coincides with the Serve route.
func (p *Pages) ShellPattern() (string, bool) {
	if p.history.Mode != HistoryHash {
		return "", false
	}
	shell := p.history.mount("{$}")
	if p.MountedPattern(*p.serve()) == shell {
		return "", false
	}
	return shell, true
}

// serve returns the Serve route; every table has one.
func (p *Pages) serve() *Route {
	route, _ := p.table.Route(KindServe)
	return route
}

// serverHistory addresses routes by request path. It equals the history in web
// mode; in hash mode it is the path the shell loads fragments from.
func (p *Pages) serverHistory() History {
	return History{Mode: HistoryWeb, Base: p.history.Base}
}

func (p *Pages) wrap(route *Route) http.Handler {
	handler := p.buildHandler(route)
	for _, middleware := range p.middlewares {
		handler = middleware(handler, route)
	}
	return handler
}

func (p *Pages) buildHandler(route *Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var wildcard []string
		m, ok := p.matchRequest(r.URL)
		switch {
		case ok && m.Route.Kind != route.Kind:
			p.redirect(w, r, m)
			return
		case ok:
			wildcard = m.Wildcard
		case route.Kind == KindPage:
			// mounted below a stripped prefix; trust the router's capture
			wildcard = strings.FieldsFunc(r.PathValue(WildcardParam), func(c rune) bool { return c == '/' })
			if len(wildcard) == 0 {
				http.NotFound(w, r)
				return
			}
		}
		r = r.WithContext(withRequest(r.Context(), p, route, wildcard))

		comp, resp := selectComponent(r, route.Component, p.history.Mode == HistoryWeb)
		bw := newBuffered(w)
		if err := comp.Render(r.Context(), bw); err != nil {
			bw.discard()
			p.onError(w, r, fmt.Errorf("render %s %s: %w", route.Name, r.URL.Path, err))
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		if isHTMX(r) {
			if err := resp.Write(bw); err != nil {
				bw.discard()
				p.onError(w, r, err)
				return
			}
		}
		if err := bw.close(); err != nil {
			p.logger.DebugContext(r.Context(), "write response", "path", r.URL.Path, "error", err)
		}
	})
}

// matchRequest resolves the request path, ignoring any fragment.
func (p *Pages) matchRequest(u *url.URL) (Match, bool) {
	loc, ok := p.serverHistory().Location(u)
	if !ok {
		return Match{}, false
	}
	return p.table.Match(loc)
}

// redirect sends the client to the canonical server URL of m, keeping the query.
func (p *Pages) redirect(w http.ResponseWriter, r *http.Request, m Match) {
	href, err := p.href(p.serverHistory(), m.Route.Kind, m.Wildcard...)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if r.URL.RawQuery != "" {
		href += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, href, http.StatusMovedPermanently)
}

func (p *Pages) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	level := slog.LevelError
	if errors.Is(err, fs.ErrNotExist) {
		status = http.StatusNotFound
		level = slog.LevelInfo
	}
	p.logger.Log(r.Context(), level, "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err)
	http.Error(w, http.StatusText(status), status)
}
