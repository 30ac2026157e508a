package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// longPollTimeoutSeconds is how long one getUpdates call blocks server side.
const longPollTimeoutSeconds = 30

// Dispatcher runs the long-polling loop and fans updates out to the router,
// one goroutine per update. No ordering is guaranteed across updates.
type Dispatcher struct {
	api    *tgbotapi.BotAPI
	router *Router
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over an authenticated client.
func NewDispatcher(api *tgbotapi.BotAPI, router *Router, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		api:    api,
		router: router,
		logger: logger,
	}
}

// Run polls for updates until ctx is cancelled. Handler failures are logged
// and end only the update that caused them. In-flight updates drain before
// Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = longPollTimeoutSeconds
	updates := d.api.GetUpdatesChan(updateConfig)

	var wg sync.WaitGroup
	for {
		select {
		case <-ctx.Done():
			d.api.StopReceivingUpdates()
			wg.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				wg.Wait()
				return nil
			}
			wg.Add(1)
			go func(update tgbotapi.Update) {
				defer wg.Done()
				d.dispatch(ctx, update)
			}(update)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, update tgbotapi.Update) {
	// shutdown cancels the poll loop only; an update already in flight
	// finishes its lookup and reply
	ctx = context.WithoutCancel(ctx)

	switch {
	case update.Message != nil:
		msg := Message{
			ChatID: update.Message.Chat.ID,
			Text:   update.Message.Text,
		}
		if err := d.router.HandleMessage(ctx, msg); err != nil {
			d.logger.Error("message handler failed",
				slog.Int64("chat_id", msg.ChatID),
				slog.Any("error", err),
			)
		}
	case update.InlineQuery != nil:
		query := InlineQuery{
			ID:    update.InlineQuery.ID,
			Query: update.InlineQuery.Query,
		}
		if err := d.router.HandleInlineQuery(ctx, query); err != nil {
			d.logger.Error("inline query handler failed",
				slog.String("query_id", query.ID),
				slog.Any("error", err),
			)
		}
	}
}
