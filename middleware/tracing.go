package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/jackielii/pageroute"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "github.com/jackielii/pageroute"

// TracingConfig configures the OpenTelemetry middleware.
type TracingConfig struct {
	// TracerName is the name of the tracer.
	TracerName string

	// Provider is the tracer provider. Default: otel.GetTracerProvider()
	Provider trace.TracerProvider
}

// TracingOption configures the OpenTelemetry middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// Tracing starts a server span per request. The span carries the route and the
// response status; 5xx responses mark it as failed.
//
// Without a configured provider the global one is used, which is a no-op until
// otel.SetTracerProvider is called.
func Tracing(opts ...TracingOption) pageroute.MiddlewareFunc {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	tracer := config.Provider.Tracer(config.TracerName)

	return func(next http.Handler, route *pageroute.Route) http.Handler {
		spanName := "GET " + route.Pattern
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), spanName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
					attribute.String("http.route", route.Pattern),
					attribute.String("pageroute.route", route.Name),
					attribute.String("pageroute.kind", route.Kind.String()),
				))
			defer span.End()

			m := httpsnoop.CaptureMetrics(next, w, r.WithContext(ctx))
			span.SetAttributes(
				attribute.Int("http.response.status_code", m.Code),
				attribute.Int64("http.response.body.size", m.Written),
			)
			if m.Code >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(m.Code))
			}
		})
	}
}
