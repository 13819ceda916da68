package telegram

//go:generate mockgen -source=types.go -destination=mocks/mock_types.go -package=mocks

import (
	"context"

	"myonion-telegram-bot/internal/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotConfig configuration of the bot
type BotConfig struct {
	Token          string
	Debug          bool
	UpdatesTimeout int
}

// BotAPI is the subset of the telegram client the bot talks to.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Responder produces replies; every failure is already folded into the returned response.
type Responder interface {
	TokenDetails(ctx context.Context, query string) commands.Response
	Trending(ctx context.Context) commands.Response
	Leaderboard(ctx context.Context) commands.Response
	Start() commands.Response
	Help() commands.Response
}

// Bot telegram interaction client
type Bot struct {
	client    *tgbotapi.BotAPI
	api       BotAPI
	responder Responder
	Config    BotConfig
}
