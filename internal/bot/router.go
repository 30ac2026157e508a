package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oljoi/brainwormsbot/internal/dictionary"
)

// defaultLang scopes every lookup. Language negotiation is out of scope.
const defaultLang = "en"

const (
	promptText    = "Please provide a word to search."
	noResultsText = "No results found."

	infoText = `Developed by <a href="https://puppy.support/">oljoi</a>
Source code available at <a href="https://toys.puppy.support/oljoi/brainwormsbot">toys.puppy.support</a>
`
)

// Router turns one inbound update into exactly one reply action. Store and
// transport failures never escape as panics; store failures degrade to a
// not-found reply and transport failures end only the current update.
type Router struct {
	store        dictionary.Repository
	transport    Transport
	source       Document
	nothingFound InlineResult
	lang         string
	logger       *slog.Logger
}

// NewRouter wires the router. The source document and the shared
// nothing-found placeholder are fixed for the life of the process.
func NewRouter(store dictionary.Repository, transport Transport, source Document, logger *slog.Logger) *Router {
	return &Router{
		store:        store,
		transport:    transport,
		source:       source,
		nothingFound: NothingFoundResult(),
		lang:         defaultLang,
		logger:       logger,
	}
}

// HandleMessage classifies and answers one direct message. A returned error
// is a transport failure; the caller logs it and moves on.
func (r *Router) HandleMessage(ctx context.Context, msg Message) error {
	intent, term := classifyMessage(msg.Text)

	switch intent {
	case IntentShowSource:
		return r.sendSource(ctx, msg.ChatID)
	case IntentShowInfo:
		if err := r.transport.SendMessage(ctx, msg.ChatID, infoText); err != nil {
			return fmt.Errorf("transport.SendMessage(info) > %w", err)
		}
	case IntentSearchOne:
		return r.searchOne(ctx, msg.ChatID, term)
	case IntentPromptForTerm:
		if err := r.transport.SendMessage(ctx, msg.ChatID, promptText); err != nil {
			return fmt.Errorf("transport.SendMessage(prompt) > %w", err)
		}
	case IntentNone:
	}
	return nil
}

// HandleInlineQuery answers one inline search. A failing store reads as an
// empty result set; the user always gets an answer.
func (r *Router) HandleInlineQuery(ctx context.Context, query InlineQuery) error {
	entries, err := r.store.FindMany(ctx, query.Query, r.lang)
	if err != nil {
		r.logger.Error("dictionary lookup failed",
			slog.String("term", query.Query),
			slog.Any("error", err),
		)
		entries = nil
	}
	if len(entries) == 0 {
		r.logger.Debug("found nothing", slog.String("term", query.Query))
	}

	results := ComposeInlineResults(entries, r.nothingFound)
	if err := r.transport.AnswerInlineQuery(ctx, query.ID, results); err != nil {
		return fmt.Errorf("transport.AnswerInlineQuery() > %w", err)
	}
	return nil
}

func (r *Router) sendSource(ctx context.Context, chatID int64) error {
	if err := r.transport.SendChatAction(ctx, chatID, ActionUploadDocument); err != nil {
		return fmt.Errorf("transport.SendChatAction() > %w", err)
	}
	if err := r.transport.SendDocument(ctx, chatID, r.source); err != nil {
		return fmt.Errorf("transport.SendDocument() > %w", err)
	}
	return nil
}

func (r *Router) searchOne(ctx context.Context, chatID int64, term string) error {
	if err := r.transport.SendChatAction(ctx, chatID, ActionTyping); err != nil {
		return fmt.Errorf("transport.SendChatAction() > %w", err)
	}

	entry, err := r.store.FindOne(ctx, term, r.lang)
	if err != nil {
		// the user sees the same reply as a genuine miss; only the log
		// tells the two apart
		r.logger.Error("dictionary lookup failed",
			slog.String("term", term),
			slog.Any("error", err),
		)
	}
	if err != nil || entry == nil {
		if sendErr := r.transport.SendMessage(ctx, chatID, noResultsText); sendErr != nil {
			return fmt.Errorf("transport.SendMessage(no results) > %w", sendErr)
		}
		return nil
	}

	r.logger.Debug("found an entry", slog.String("term", term), slog.Int64("id", entry.ID))
	if err := r.transport.SendMessage(ctx, chatID, FormatCard(*entry)); err != nil {
		return fmt.Errorf("transport.SendMessage(card) > %w", err)
	}
	return nil
}
