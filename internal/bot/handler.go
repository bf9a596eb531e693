package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "bind":
		b.handleBind(message)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	var inviterID *int64
	if arg := strings.TrimSpace(message.CommandArguments()); arg != "" {
		if id, err := strconv.ParseInt(strings.Fields(arg)[0], 10, 64); err == nil {
			inviterID = &id
		}
	}

	created, err := b.users.Register(message.From.ID, displayName(message.From), inviterID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", message.From.ID).Msg("register failed")
		b.reply(message, "❌ 注册失败，请稍后重试")
		return
	}
	if created {
		b.reply(message, "✅ 注册成功，欢迎参加骰子游戏")
	} else {
		b.reply(message, "欢迎回来")
	}
}

func (b *Bot) handleBind(message *tgbotapi.Message) {
	if err := b.users.Bind(message.From.ID, displayName(message.From)); err != nil {
		b.reply(message, "❌ 绑定失败，请稍后重试")
		return
	}
	b.reply(message, "✅ Telegram 已成功绑定")
}

func displayName(from *tgbotapi.User) string {
	if from.UserName != "" {
		return from.UserName
	}
	return from.FirstName
}

func (b *Bot) reply(message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Msg("send message failed")
	}
}
