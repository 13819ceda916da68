package telegram

import (
	"context"
	"strings"

	"myonion-telegram-bot/internal/commands"
	"myonion-telegram-bot/lib/helpers"
	"myonion-telegram-bot/lib/translation"

	"github.com/davecgh/go-spew/spew"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const logoFileName = "logo.jpg"

// NewBot creates new telegram bot
func NewBot(c BotConfig, responder Responder) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(c.Token)
	if err != nil {
		return nil, errors.Wrap(err, "could not create telegram bot")
	}

	bot.Debug = c.Debug

	b := NewBotWithAPI(bot, responder)
	b.client = bot
	b.Config = c
	return b, nil
}

// NewBotWithAPI creates a bot over an existing client. It cannot poll for updates.
func NewBotWithAPI(api BotAPI, responder Responder) *Bot {
	return &Bot{
		api:       api,
		responder: responder,
	}
}

// GetUpdatesChannel gets new updates updates
func (b *Bot) GetUpdatesChannel() (tgbotapi.UpdatesChannel, error) {
	if b.client == nil {
		return nil, errors.New("bot has no telegram client to poll with")
	}
	updatesConfig := tgbotapi.NewUpdate(0)
	if b.Config.UpdatesTimeout > 0 {
		updatesConfig.Timeout = b.Config.UpdatesTimeout
	}
	return b.client.GetUpdatesChan(updatesConfig), nil
}

func (b *Bot) StopReceivingUpdates() {
	if b.client != nil {
		b.client.StopReceivingUpdates()
	}
}

// HandleUpdate routes one update to its responder and delivers the reply.
func (b *Bot) HandleUpdate(ctx context.Context, u tgbotapi.Update) error {
	switch {
	case u.CallbackQuery != nil:
		return b.HandleCallbackQuery(ctx, u.CallbackQuery)
	case u.Message != nil:
		return b.HandleMessage(ctx, u.Message)
	default:
		log.Debugf("ignoring update: %s", spew.Sdump(u))
		return nil
	}
}

// HandleMessage answers commands and plain-text token queries.
func (b *Bot) HandleMessage(ctx context.Context, m *tgbotapi.Message) error {
	chatID := m.Chat.ID

	if !m.IsCommand() {
		query := strings.TrimSpace(m.Text)
		if query == "" {
			log.Debug("received message without text")
			return nil
		}
		b.sendTyping(chatID)
		return b.reply(chatID, m.MessageID, b.responder.TokenDetails(ctx, query))
	}

	command := helpers.Lower(m.Command())
	log.Debugf("received command: %s", command)

	b.sendTyping(chatID)

	var resp commands.Response
	switch command {
	case "start":
		resp = b.responder.Start()
	case "help":
		resp = b.responder.Help()
	case "trending":
		resp = b.responder.Trending(ctx)
	case "leaderboard":
		resp = b.responder.Leaderboard(ctx)
	case "p":
		query := strings.TrimSpace(m.CommandArguments())
		if query == "" {
			resp = b.responder.Help()
			break
		}
		resp = b.responder.TokenDetails(ctx, query)
	default:
		// /<symbol> [words...] queries the whole lowercased text after the slash
		query := command
		if args := strings.TrimSpace(m.CommandArguments()); args != "" {
			query += " " + helpers.Lower(args)
		}
		resp = b.responder.TokenDetails(ctx, query)
	}

	return b.reply(chatID, m.MessageID, resp)
}

// HandleCallbackQuery handles the refresh button: the callback is answered first, then the message is edited in place.
func (b *Bot) HandleCallbackQuery(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	symbol, ok := strings.CutPrefix(q.Data, commands.RefreshPrefix)
	if !ok || symbol == "" || q.Message == nil {
		return b.answer(q.ID, translation.Translate("Unknown action."))
	}

	if err := b.answer(q.ID, translation.Translate("🔄 Refreshing…")); err != nil {
		log.Error(err)
	}

	resp := b.responder.TokenDetails(ctx, symbol)
	if resp.Notice {
		return b.reply(q.Message.Chat.ID, 0, resp)
	}
	return b.edit(q.Message, resp)
}

func (b *Bot) answer(callbackID, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallback(callbackID, text))
	return errors.Wrap(err, "could not answer callback")
}

func (b *Bot) sendTyping(chatID int64) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		log.Debugf("could not send typing action: %v", err)
	}
}

func parseMode(r commands.Response) string {
	if r.Notice {
		return ""
	}
	return tgbotapi.ModeMarkdownV2
}

func keyboard(buttons []commands.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		if btn.URL != "" {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(btn.Label, btn.URL)))
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data)))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

// reply sends r as a new message; a photo with caption when r carries an image.
func (b *Bot) reply(chatID int64, replyTo int, r commands.Response) error {
	markup := keyboard(r.Buttons)

	if len(r.Image) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  logoFileName,
			Bytes: r.Image,
		})
		photo.Caption = r.Text
		photo.ParseMode = parseMode(r)
		photo.ReplyToMessageID = replyTo
		if markup != nil {
			photo.ReplyMarkup = *markup
		}
		_, err := b.api.Send(photo)
		return errors.Wrap(err, "could not send photo")
	}

	msg := tgbotapi.NewMessage(chatID, r.Text)
	msg.ReplyToMessageID = replyTo
	msg.DisableWebPagePreview = true
	msg.ParseMode = parseMode(r)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	_, err := b.api.Send(msg)
	return errors.Wrap(err, "could not send message")
}

// edit replaces m in place. A photo message keeps being a photo: its media is swapped when a new
// logo is available, otherwise only its caption changes.
func (b *Bot) edit(m *tgbotapi.Message, r commands.Response) error {
	chatID, messageID := m.Chat.ID, m.MessageID
	markup := keyboard(r.Buttons)

	var edit tgbotapi.Chattable
	switch {
	case len(m.Photo) > 0 && len(r.Image) > 0:
		media := tgbotapi.NewInputMediaPhoto(tgbotapi.FileBytes{
			Name:  logoFileName,
			Bytes: r.Image,
		})
		media.Caption = r.Text
		media.ParseMode = parseMode(r)
		edit = tgbotapi.EditMessageMediaConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:      chatID,
				MessageID:   messageID,
				ReplyMarkup: markup,
			},
			Media: media,
		}
	case len(m.Photo) > 0:
		cfg := tgbotapi.NewEditMessageCaption(chatID, messageID, r.Text)
		cfg.ParseMode = parseMode(r)
		cfg.ReplyMarkup = markup
		edit = cfg
	default:
		cfg := tgbotapi.NewEditMessageText(chatID, messageID, r.Text)
		cfg.ParseMode = parseMode(r)
		cfg.DisableWebPagePreview = true
		cfg.ReplyMarkup = markup
		edit = cfg
	}

	_, err := b.api.Request(edit)
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		log.Debugf("message %d unchanged after refresh", messageID)
		return nil
	}
	return errors.Wrapf(err, "could not edit message %d", messageID)
}
