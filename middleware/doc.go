// Package middleware provides route middlewares for pageroute: request IDs,
// structured access logs, Prometheus metrics and OpenTelemetry tracing.
//
// Every middleware has the pageroute.MiddlewareFunc shape and is installed with
// pageroute.WithMiddlewares. The last middleware given is the outermost, so
// RequestID should come last when Logging is expected to see the ID:
//
//	pageroute.WithMiddlewares(
//		middleware.Logging(logger),
//		middleware.Metrics(),
//		middleware.RequestID(),
//	)
package middleware
