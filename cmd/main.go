package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/zlee-dev/dice-rewards/api"
	api_middleware "github.com/zlee-dev/dice-rewards/api/middleware"
	v1 "github.com/zlee-dev/dice-rewards/api/v1"
	"github.com/zlee-dev/dice-rewards/internal/bot"
	"github.com/zlee-dev/dice-rewards/internal/config"
	"github.com/zlee-dev/dice-rewards/internal/game"
	"github.com/zlee-dev/dice-rewards/internal/scheduler"
	"github.com/zlee-dev/dice-rewards/internal/session"
	"github.com/zlee-dev/dice-rewards/internal/user"
	"github.com/zlee-dev/dice-rewards/pkg/db"
	"github.com/zlee-dev/dice-rewards/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}
	logger.Init("dice-rewards", cfg.Debug)

	gdb, rdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("store connection failed")
	}
	if err := gdb.AutoMigrate(&user.User{}, &game.History{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	userRepo := user.NewUserRepository(gdb)
	gameRepo := game.NewGameRepository(gdb)
	userService := user.NewService(userRepo)
	gameService := game.NewService(userRepo, gameRepo)
	sessions := session.NewStore(rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = api_middleware.ErrorHandler()

	renderer, err := api.NewTemplateRenderer("web/templates/*.html")
	if err != nil {
		log.Fatal().Err(err).Msg("template parsing failed")
	}
	e.Renderer = renderer

	v1.NewGameHandler(gameService, userService).Register(e)
	v1.NewAdminHandler(userService, gameService, sessions, cfg.Admin.Username, cfg.Admin.Password).
		Register(e, api_middleware.AdminGate(sessions))

	sched, err := scheduler.New(userService)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler setup failed")
	}
	sched.Start()

	var tgBot *bot.Bot
	if cfg.Telegram.BotToken != "" {
		tgBot, err = bot.New(cfg.Telegram.BotToken, userService)
		if err != nil {
			log.Fatal().Err(err).Msg("telegram bot setup failed")
		}
		go tgBot.Run()
	} else {
		log.Warn().Msg("BOT_TOKEN not set, telegram bot disabled")
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	sched.Stop()
	if tgBot != nil {
		tgBot.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
