package host

import (
	"time"

	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/j0lvera/arlo/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Capabilities assistant.Capabilities
}

// New wires the local machine's capabilities.
func New(p Params) Result {
	logger := p.Logger.With().Str("component", "host").Logger()

	screen := NewScreen()
	if !screen.Available() {
		logger.Warn().Msg("no active display found, screenshots disabled")
	}

	return Result{
		Capabilities: assistant.Capabilities{
			Clock:         assistant.ClockFunc(time.Now),
			Metrics:       NewMetrics(logger),
			Browser:       NewBrowser(),
			Launcher:      NewLauncher(logger, p.Config.TextEditorCommand, p.Config.CalculatorCommand),
			Screenshots:   screen,
			ScreenshotDir: p.Config.ScreenshotDir,
		},
	}
}

func Module() fx.Option {
	return fx.Module(
		"host",
		fx.Provide(New),
	)
}
