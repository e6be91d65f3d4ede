package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Resolver turns a chat message into a reply.
type Resolver interface {
	Resolve(ctx context.Context, query string) string
}

// Sender is the subset of the Telegram client used to answer messages.
// *tbot.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, params *tbot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *tbot.SendChatActionParams) (bool, error)
}
