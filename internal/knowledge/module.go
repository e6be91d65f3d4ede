package knowledge

import (
	"context"
	"net/http"

	"github.com/j0lvera/arlo/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Summarizer is implemented by every knowledge provider.
type Summarizer interface {
	Summarize(ctx context.Context, topic string, sentences int) (string, error)
}

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Summarizer Summarizer
}

// New selects the provider named by the configuration.
func New(p Params) Result {
	logger := p.Logger.With().Str("component", "knowledge").Logger()
	hc := &http.Client{Timeout: p.Config.LookupTimeout}

	if p.Config.KnowledgeProvider == config.KnowledgeSearch {
		logger.Info().Msg("using wikipedia search provider")
		return Result{Summarizer: NewSearch(p.Config.WikipediaUserAgent, p.Config.WikipediaLanguage, hc)}
	}

	return Result{Summarizer: NewMediaWiki(
		p.Config.WikipediaUserAgent,
		WithLanguage(p.Config.WikipediaLanguage),
		WithBaseURL(p.Config.WikipediaBaseURL),
		WithHTTPClient(hc),
		WithLogger(logger),
	)}
}

func Module() fx.Option {
	return fx.Module(
		"knowledge",
		fx.Provide(New),
	)
}
