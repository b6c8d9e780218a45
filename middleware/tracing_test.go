package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordedSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	ended  bool
}

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordedSpan) End(...trace.SpanEndOption) { s.ended = true }

type recordingTracer struct {
	noop.Tracer
	spans *[]*recordedSpan
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, kind: cfg.SpanKind(), attrs: map[attribute.Key]attribute.Value{}}
	s.SetAttributes(cfg.Attributes()...)
	*t.spans = append(*t.spans, s)
	return trace.ContextWithSpan(ctx, s), s
}

type recordingProvider struct {
	noop.TracerProvider
	spans []*recordedSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{spans: &p.spans}
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{}
	h := mount(t, failPage, Tracing(WithTracerProvider(tp)))

	get(h, "/web/")
	get(h, "/web/a/b")
	require.Len(t, tp.spans, 2)

	serve := tp.spans[0]
	assert.Equal(t, "GET /web/{$}", serve.name)
	assert.Equal(t, trace.SpanKindServer, serve.kind)
	assert.True(t, serve.ended)
	assert.Equal(t, "serve", serve.attrs["pageroute.route"].AsString())
	assert.Equal(t, "Serve", serve.attrs["pageroute.kind"].AsString())
	assert.Equal(t, int64(200), serve.attrs["http.response.status_code"].AsInt64())
	assert.Equal(t, codes.Unset, serve.status)

	page := tp.spans[1]
	assert.Equal(t, "GET /web/{wildcard...}", page.name)
	assert.Equal(t, "/web/a/b", page.attrs["url.path"].AsString())
	assert.Equal(t, int64(500), page.attrs["http.response.status_code"].AsInt64())
	assert.Equal(t, codes.Error, page.status)
}
