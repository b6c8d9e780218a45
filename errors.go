package pageroute

import "errors"

var (
	// ErrShadowedRoute is returned when a catch-all route is ordered before the
	// literal route of the same prefix and would shadow it.
	ErrShadowedRoute = errors.New("catch-all route shadows literal route")
	// ErrBaseMismatch is returned in strict mode when the history base and the
	// route prefix are both non-root.
	ErrBaseMismatch = errors.New("history base doubles the route prefix")

	ErrInvalidPrefix  = errors.New("invalid route prefix")
	ErrInvalidHistory = errors.New("invalid history mode")
	ErrNoRoute        = errors.New("no route")
)
