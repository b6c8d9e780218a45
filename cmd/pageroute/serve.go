package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route table over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			slog.SetDefault(logger)

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}

// wrapHandler adds the server level middleware.
func (a *app) wrapHandler() http.Handler {
	h := a.handler
	if a.cfg.Server.Compress {
		h = handlers.CompressHandler(h)
	}
	if a.cfg.Server.TrustProxy {
		h = handlers.ProxyHeaders(h)
	}
	recoveryLog := slog.NewLogLogger(a.logger.Handler(), slog.LevelError)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLog),
		handlers.PrintRecoveryStack(true),
	)(h)
}

func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      a.wrapHandler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(a.logger.Handler(), slog.LevelWarn),
	}

	errc := make(chan error, 1)
	go func() {
		h := a.pages.History()
		a.logger.Info("listening",
			"addr", srv.Addr,
			"router", a.cfg.Server.Router,
			"prefix", a.pages.Table().Prefix(),
			"history", h.Mode,
			"base", h.Base)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
