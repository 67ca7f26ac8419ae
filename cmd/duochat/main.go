// Command duochat serves a chat front-end that fans each query out to
// OpenAI and Gemini concurrently and shows both answers side by side in
// one conversation.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/manasdev/duochat/core/aggregate"
	"github.com/manasdev/duochat/core/chat"
	"github.com/manasdev/duochat/core/conversation"
	"github.com/manasdev/duochat/internal/config"
	"github.com/manasdev/duochat/internal/http/handler"
	"github.com/manasdev/duochat/internal/http/router"
	"github.com/manasdev/duochat/providers/ai/gemini"
	"github.com/manasdev/duochat/providers/ai/openai"
)

const shutdownGrace = 10 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	openaiProvider := openai.New().WithModel(cfg.OpenAIModel)
	geminiProvider := gemini.New().WithModel(cfg.GeminiModel)

	service := chat.New(
		conversation.NewStore(),
		aggregate.New(openaiProvider, geminiProvider, aggregate.WithTimeout(cfg.AggregateTimeout)),
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob("web/templates/*")
	router.Register(r, handler.NewChatHandler(service))

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("duochat listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
