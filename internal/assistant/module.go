package assistant

import (
	"github.com/j0lvera/arlo/internal/config"
	"github.com/j0lvera/arlo/internal/intent"
	"github.com/j0lvera/arlo/internal/knowledge"
	"github.com/j0lvera/arlo/internal/wolfram"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config       *config.Config
	Logger       zerolog.Logger
	Table        *intent.Table
	Capabilities Capabilities
	Computation  *wolfram.Client
	Knowledge    knowledge.Summarizer
}

// NewTable loads the intent table named by the configuration.
func NewTable(cfg *config.Config, logger zerolog.Logger) (*intent.Table, error) {
	t, err := intent.LoadFile(cfg.IntentsFile)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", cfg.IntentsFile).Int("intents", t.Len()).Msg("intent table loaded")
	return t, nil
}

func New(p Params) (*Resolver, error) {
	return NewResolver(
		p.Table,
		p.Capabilities,
		p.Computation,
		p.Knowledge,
		WithLookupTimeout(p.Config.LookupTimeout),
		WithLogger(p.Logger.With().Str("component", "assistant").Logger()),
	)
}

func Module() fx.Option {
	return fx.Module(
		"assistant",
		fx.Provide(
			NewTable,
			New,
		),
	)
}
