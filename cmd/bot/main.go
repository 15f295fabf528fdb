package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"coffee-order-bot/internal/bot"
	"coffee-order-bot/internal/config"
	"coffee-order-bot/internal/db"
	"coffee-order-bot/internal/domain"
	"coffee-order-bot/internal/engine"
	"coffee-order-bot/internal/httpserver"
	"coffee-order-bot/internal/payment"
	settingsrepo "coffee-order-bot/internal/repository/settings"
	ordersvc "coffee-order-bot/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[bot] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	catalog := domain.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		logger.Fatalf("invalid catalog: %v", err)
	}

	loc, err := time.LoadLocation(cfg.ShopTimezone)
	if err != nil {
		logger.Fatalf("load timezone %q: %v", cfg.ShopTimezone, err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatalf("init telegram client: %v", err)
	}

	settingsRepo := settingsrepo.NewPostgres(dbpool, loc)
	notifier := bot.NewStaffNotifier(api, cfg.StaffChatID, logger)
	orderService := ordersvc.New(catalog, settingsRepo, notifier, logger)
	payments := payment.New(cfg.YooKassaShopID, cfg.YooKassaSecretKey, "https://t.me/"+api.Self.UserName, logger)
	eng := engine.New(catalog, payments, orderService, settingsRepo, logger)
	tgBot := bot.New(api, eng, catalog, settingsRepo, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, settingsRepo)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	botErr := make(chan error, 1)
	go func() {
		if err := tgBot.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			botErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	case err := <-botErr:
		logger.Printf("bot error: %v", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
