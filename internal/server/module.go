package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/j0lvera/arlo/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const readHeaderTimeout = 10 * time.Second

type Params struct {
	fx.In

	Config   *config.Config
	Resolver *assistant.Resolver
	Logger   zerolog.Logger
}

func New(lc fx.Lifecycle, p Params) *http.Server {
	log := p.Logger.With().Str("component", "http").Logger()

	srv := &http.Server{
		Addr:              p.Config.HTTPAddr,
		Handler:           NewHandler(p.Resolver, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				ln, err := net.Listen("tcp", srv.Addr)
				if err != nil {
					return err
				}
				log.Info().Str("addr", ln.Addr().String()).Msg("starting http server...")
				go func() {
					if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error().Err(err).Msg("http server stopped")
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("stopping http server...")
				return srv.Shutdown(ctx)
			},
		},
	)

	return srv
}

func Module() fx.Option {
	return fx.Module(
		"server",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(*http.Server) {},
		),
	)
}
