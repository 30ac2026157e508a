package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oljoi/brainwormsbot/internal/assets"
	"github.com/oljoi/brainwormsbot/internal/bot"
	"github.com/oljoi/brainwormsbot/internal/config"
	"github.com/oljoi/brainwormsbot/internal/database"
	"github.com/oljoi/brainwormsbot/internal/dictionary"
)

func runBot(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Connect() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	// one overall timeout bounds a stuck reply; long polling stays under it
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Telegram.RequestTimeoutSeconds) * time.Second,
	}
	api, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return fmt.Errorf("tgbotapi.NewBotAPIWithClient() > %w", err)
	}

	logger := slog.Default()
	store := dictionary.NewDBRepository(db)
	transport := bot.NewTelegramTransport(api)
	source := bot.Document{
		Name: assets.DictionaryFileName,
		Data: assets.DictionaryPDF(),
	}
	router := bot.NewRouter(store, transport, source, logger)
	dispatcher := bot.NewDispatcher(api, router, logger)

	logger.Info("starting the bot", slog.String("username", api.Self.UserName))
	if err := dispatcher.Run(ctx); err != nil {
		return fmt.Errorf("dispatcher.Run() > %w", err)
	}
	logger.Info("bot stopped")
	return nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}
