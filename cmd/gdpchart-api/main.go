// @title         gdpchart API
// @version       0.1.0
// @description   Quarterly US GDP as a projected bar chart
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gdpchart/internal/core/version"
	"gdpchart/internal/platform/config"
	"gdpchart/internal/platform/logger"
	"gdpchart/internal/platform/metrics"
	phttp "gdpchart/internal/platform/net/http"

	"gdpchart/internal/services/api"
)

func main() {
	version.SetService("gdpchart-api")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.App()); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}

func run(ctx context.Context, cfg config.Conf) error {
	// http server (reads GDPCHART_API_PORT / GDPCHART_API_ADDR)
	srv := phttp.NewServer(cfg)

	opt := api.OptionsFrom(cfg)
	opt.Metrics = metrics.New()
	api.Mount(srv.Router(), opt)

	logger.Get().Info().
		Str("version", version.Info().Version).
		Bool("preload", opt.Preload).
		Msg("gdpchart api starting")
	return srv.Run(ctx)
}
