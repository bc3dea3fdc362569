package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-orchestrator/config"
	_ "chat-orchestrator/docs" // Swagger docs
	chatHTTP "chat-orchestrator/internal/chat/delivery/http"
	chatUC "chat-orchestrator/internal/chat/usecase"
	"chat-orchestrator/internal/httpserver"
	"chat-orchestrator/internal/middleware"
	"chat-orchestrator/internal/router"
	"chat-orchestrator/internal/session"
	"chat-orchestrator/pkg/log"
	"chat-orchestrator/pkg/provider"
)

// @title       Chat Orchestrator API
// @description Intent classification and provider orchestration: conversational replies via GigaChat, image generation, and web-search-augmented answers with provider fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chat Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Provider chains
	chains, err := provider.InitializeChains(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize provider chains: ", err)
		return
	}
	manager := provider.NewManager(chains, &provider.Config{
		FailureThreshold: cfg.Health.FailureThreshold,
		Cooldown:         cfg.Health.Cooldown,
	}, logger)
	logger.Infof(ctx, "Provider chains initialized: %d conversational, %d image, %d search",
		len(chains[provider.KindConversational]),
		len(chains[provider.KindImage]),
		len(chains[provider.KindSearch]))

	// 4. Session store
	sessions := session.New(session.Config{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
		MaxMessages: cfg.Session.MaxMessages,
	})

	// 5. Chat domain
	classifier := router.New(logger)
	uc := chatUC.New(logger, classifier, manager, sessions)
	chatHandler := chatHTTP.New(logger, uc)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
