package wolfram

import (
	"github.com/j0lvera/arlo/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

func NewFromConfig(p Params) *Client {
	logger := p.Logger.With().Str("component", "wolfram").Logger()
	if p.Config.WolframAppID == "" {
		logger.Warn().Msg("WOLFRAM_APPID not set, computation lookups disabled")
	}

	return New(
		p.Config.WolframAppID,
		WithBaseURL(p.Config.WolframBaseURL),
		WithTimeout(p.Config.LookupTimeout),
		WithLogger(logger),
	)
}

func Module() fx.Option {
	return fx.Module(
		"wolfram",
		fx.Provide(NewFromConfig),
	)
}
