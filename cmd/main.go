// Package main wires the HTTP server for the exercise tracker service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"exercise-tracker/config"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/transport/http/middleware"
	"exercise-tracker/internal/transport/http/server/handlers-fiber"
	"exercise-tracker/internal/usecase"
	"exercise-tracker/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err, "backend", cfg.Repository.Backend)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	if cfg.Admin.Enabled {
		log.Warnw("admin wipe routes enabled", "token_required", cfg.Admin.Token != "")
	}
	h := handlers_fiber.NewHandler(log, uc, cfg.HTTP.DateLayout)
	handlers_fiber.RegisterHandlers(serv, h, handlers_fiber.RouteOptions{
		AdminEnabled: cfg.Admin.Enabled,
		AdminToken:   cfg.Admin.Token,
	})

	if cfg.HTTP.StaticDir != "" {
		serv.Static("/", cfg.HTTP.StaticDir)
	}

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "backend", cfg.Repository.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
