// File: cmd/bot/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"telegram-canteen-bot/internal/application"
	"telegram-canteen-bot/internal/config"
	"telegram-canteen-bot/internal/infra/adapters/kanttiinit"
	tele "telegram-canteen-bot/internal/infra/adapters/telegram"
	httpops "telegram-canteen-bot/internal/infra/http"
	"telegram-canteen-bot/internal/infra/logging"
	"telegram-canteen-bot/internal/infra/metrics"
	"telegram-canteen-bot/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)

	// ---- Metrics ----
	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Canteen API (memoized restaurant list) ----
	canteenAPI := kanttiinit.NewMemoized(kanttiinit.NewClient(&cfg.Canteen, logger))

	// ---- Use cases ----
	restaurantUC := usecase.NewRestaurantUseCase(canteenAPI)
	menuUC := usecase.NewMenuUseCase(canteenAPI)

	// ---- Facade ----
	facade := application.NewBotFacade(restaurantUC, menuUC)

	// ---- Telegram ----
	botAdapter, err := tele.NewRealTelegramBotAdapter(cfg, facade, logger)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	go func() {
		if err := botAdapter.StartPolling(ctx); err != nil && err != context.Canceled {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Ops HTTP server (/healthz, /metrics) ----
	opsSrv := httpops.NewServer(cfg.Admin.Port, logger)
	go func() {
		if err := opsSrv.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("ops http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()
}
