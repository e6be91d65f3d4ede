// Package bot answers Telegram messages with the assistant.
package bot

import (
	"context"
	"time"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/j0lvera/arlo/internal/config"
	"github.com/j0lvera/arlo/internal/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config   *config.Config
	Resolver *assistant.Resolver
	Logger   zerolog.Logger
}

// New creates the Telegram bot. It returns a nil bot when no token is
// configured.
func New(lc fx.Lifecycle, p Params) (*tbot.Bot, error) {
	log := p.Logger.With().Str("component", "telegram").Logger()

	if p.Config.TelegramToken == "" {
		log.Info().Msg("TELEGRAM_API_TOKEN not set, telegram bot disabled")
		return nil, nil
	}

	opts := []tbot.Option{
		tbot.WithDefaultHandler(
			func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
				handleMessage(ctx, tg, update, p.Resolver, &log)
			},
		),
	}

	tg, err := tbot.New(p.Config.TelegramToken, opts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				log.Info().Msg("starting telegram bot...")
				go tg.Start(ctx)
				return nil
			},
			OnStop: func(context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				cancel()
				return nil
			},
		},
	)

	return tg, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}

func handleMessage(
	ctx context.Context,
	tg Sender,
	update *models.Update,
	resolver Resolver,
	log *zerolog.Logger,
) {
	// Only text messages are answered.
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	start := time.Now()
	chatID := update.Message.Chat.ID

	if _, err := tg.SendChatAction(ctx, &tbot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	}); err != nil {
		log.Debug().Err(err).Int64("chat_id", chatID).Msg("unable to send typing action")
	}

	reply := resolver.Resolve(ctx, update.Message.Text)

	if _, err := tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID: chatID,
		Text:   reply,
	}); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to send reply")
		return
	}

	metrics.RequestDuration.WithLabelValues("telegram").Observe(time.Since(start).Seconds())
	log.Info().Int64("chat_id", chatID).Dur("elapsed", time.Since(start)).Msg("message answered")
}
