package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramTransport adapts the Telegram Bot API client to the Transport
// interface. The client library does not take a context; cancellation is
// bounded by the HTTP client timeout configured at startup.
type TelegramTransport struct {
	api *tgbotapi.BotAPI
}

// NewTelegramTransport creates a transport over an authenticated client.
func NewTelegramTransport(api *tgbotapi.BotAPI) *TelegramTransport {
	return &TelegramTransport{api: api}
}

func (t *TelegramTransport) SendChatAction(_ context.Context, chatID int64, action string) error {
	if _, err := t.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		return fmt.Errorf("api.Request(chat action) > %w", err)
	}
	return nil
}

func (t *TelegramTransport) SendMessage(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("api.Send(message) > %w", err)
	}
	return nil
}

func (t *TelegramTransport) SendDocument(_ context.Context, chatID int64, document Document) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  document.Name,
		Bytes: document.Data,
	})
	if _, err := t.api.Send(doc); err != nil {
		return fmt.Errorf("api.Send(document) > %w", err)
	}
	return nil
}

func (t *TelegramTransport) AnswerInlineQuery(_ context.Context, queryID string, results []InlineResult) error {
	answers := make([]interface{}, 0, len(results))
	for _, result := range results {
		article := tgbotapi.NewInlineQueryResultArticleHTML(result.ID, result.Title, result.MessageHTML)
		article.Description = result.Description
		answers = append(answers, article)
	}

	if _, err := t.api.Request(tgbotapi.InlineConfig{
		InlineQueryID: queryID,
		Results:       answers,
	}); err != nil {
		return fmt.Errorf("api.Request(inline answer) > %w", err)
	}
	return nil
}
