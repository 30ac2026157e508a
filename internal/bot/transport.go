package bot

import "context"

//go:generate mockgen -source=transport.go -destination=../mocks/bot/mock_transport.go -package=mock_bot

// Chat actions understood by the transport.
const (
	ActionTyping         = "typing"
	ActionUploadDocument = "upload_document"
)

// Transport sends replies back through the chat service. Text passed to
// SendMessage and inline card bodies are HTML.
type Transport interface {
	SendChatAction(ctx context.Context, chatID int64, action string) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, document Document) error
	AnswerInlineQuery(ctx context.Context, queryID string, results []InlineResult) error
}
