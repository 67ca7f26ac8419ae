// Package router maps HTTP routes onto the chat handlers.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/manasdev/duochat/internal/http/handler"
)

// Register wires the chat routes onto the engine.
func Register(r *gin.Engine, h *handler.ChatHandler) {
	r.GET("/", h.Index)
	r.POST("/ask", h.Ask)
	r.GET("/new-chat", h.NewChat)
	r.GET("/chat/:chatId", h.SwitchChat)
}
