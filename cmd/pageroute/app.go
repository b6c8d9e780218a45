package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/pageroute"
	"github.com/jackielii/pageroute/chirouter"
	"github.com/jackielii/pageroute/content"
	"github.com/jackielii/pageroute/content/s3store"
	"github.com/jackielii/pageroute/internal/config"
	"github.com/jackielii/pageroute/middleware"
	"github.com/jackielii/pageroute/views"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	pages    *pageroute.Pages
	handler  http.Handler
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newStore(cfg config.ContentConfig) content.Store {
	if cfg.Source == "s3" {
		client := s3store.NewClient(s3store.Options{
			Region:   cfg.S3.Region,
			Endpoint: cfg.S3.Endpoint,
		})
		return s3store.New(client, cfg.S3.Bucket, cfg.S3.Prefix)
	}
	return content.NewFSStore(os.DirFS(cfg.Dir))
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	pc, err := cfg.Pages()
	if err != nil {
		return nil, err
	}
	store := newStore(cfg.Content)

	a := &app{cfg: cfg, logger: logger}
	mws := []pageroute.MiddlewareFunc{middleware.Logging(logger)}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mws = append(mws, middleware.Metrics(middleware.WithRegistry(a.registry)))
	}
	if cfg.Tracing.Enabled {
		mws = append(mws, middleware.Tracing(middleware.WithTracerName(cfg.Tracing.TracerName)))
	}
	mws = append(mws, middleware.RequestID())

	opts := []pageroute.Option{
		pageroute.WithLogger(logger),
		pageroute.WithMiddlewares(mws...),
	}
	if cfg.Routes.Strict {
		opts = append(opts, pageroute.WithStrictHistory())
	}
	pages, err := pageroute.New(pc, views.Serve(store, cfg.Routes.Title), views.Page(store), opts...)
	if err != nil {
		return nil, err
	}

	a.pages = pages
	switch cfg.Server.Router {
	case "chi":
		r := chi.NewRouter()
		a.addOps(func(pattern string, h http.Handler) { r.Method(http.MethodGet, pattern, h) })
		if err := pages.Mount(chirouter.NewChiRouter(r)); err != nil {
			return nil, err
		}
		a.handler = r
	default:
		mux := http.NewServeMux()
		a.addOps(func(pattern string, h http.Handler) { mux.Handle("GET "+pattern, h) })
		if err := pages.Mount(pageroute.NewRouter(mux)); err != nil {
			return nil, err
		}
		a.handler = mux
	}
	return a, nil
}

// addOps registers the operational endpoints next to the pages.
func (a *app) addOps(handle func(pattern string, h http.Handler)) {
	handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	}))
	if a.registry != nil {
		handle(a.cfg.Metrics.Path, promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))
	}
}
