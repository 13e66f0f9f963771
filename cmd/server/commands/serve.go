package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"claimeval/internal/claims"
	"claimeval/internal/claims/handler"
	claimmetrics "claimeval/internal/claims/metrics"
	"claimeval/internal/platform/config"
	"claimeval/internal/platform/httpserver"
	platformmetrics "claimeval/internal/platform/metrics"
	httptransport "claimeval/internal/transport/http"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP evaluation API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			srv := httpserver.New(opts.cfg.Addr, buildRouter(opts.cfg, opts.logger))
			return serve(ctx, srv, opts.cfg, opts.logger)
		},
	}
}

// buildRouter wires the claim module into the HTTP router.
func buildRouter(cfg config.Server, logger *slog.Logger) http.Handler {
	var (
		metricsHandler http.Handler
		claimMetrics   *claimmetrics.Metrics
	)
	if cfg.MetricsEnabled {
		reg := platformmetrics.New()
		claimMetrics = claimmetrics.New(reg)
		metricsHandler = reg.Handler()
	}

	svc := claims.NewService(
		claims.WithLogger(logger),
		claims.WithMetrics(claimMetrics),
	)

	return httptransport.NewRouter(httptransport.RouterConfig{
		Logger:       logger,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Metrics:      metricsHandler,
	}, handler.New(svc, logger))
}

// serve runs srv until ctx is done, then shuts it down within the
// configured timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting claimeval", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "shutting down claimeval")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
