package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/zlee-dev/dice-rewards/internal/user"
)

// Bot is the Telegram entry point. It shares the store with the web
// server but holds no account state of its own.
type Bot struct {
	api   *tgbotapi.BotAPI
	users *user.Service
}

func New(token string, users *user.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Info().Str("username", api.Self.UserName).Msg("telegram bot authorized")
	return &Bot{api: api, users: users}, nil
}

// Run polls for updates until Stop is called. Blocking; run it on its
// own goroutine.
func (b *Bot) Run() {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for update := range b.api.GetUpdatesChan(updateConfig) {
		if update.Message != nil && update.Message.IsCommand() {
			b.handleCommand(update.Message)
		}
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}
