// Package handler contains the gin handlers: a thin shim between HTTP and
// the chat service. Handlers own session-cookie identity and view
// preparation; all conversation logic lives in core/chat.
package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"html"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manasdev/duochat/core/aggregate"
	"github.com/manasdev/duochat/core/chat"
	"github.com/manasdev/duochat/providers/ai"
)

const (
	sessionCookieName = "duochat_session"
	sessionMaxAge     = 7 * 24 * 60 * 60
)

// ChatHandler serves the chat UI and its form endpoints.
type ChatHandler struct {
	service *chat.Service
}

// NewChatHandler returns a handler over the given chat service.
func NewChatHandler(service *chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// messageView is one conversation turn prepared for the template. Assistant
// content arrives pre-rendered as HTML; user content is escaped here so the
// template can treat both uniformly.
type messageView struct {
	Role    string
	Label   string
	Content template.HTML
}

// Index renders the chat page: thread list, active thread id, and the
// active conversation with assistant markdown rendered to HTML.
func (h *ChatHandler) Index(c *gin.Context) {
	sessionID := h.sessionID(c)

	var messages []messageView
	activeID := ""
	if thread := h.service.ActiveThread(sessionID); thread != nil {
		activeID = thread.ID
		messages = make([]messageView, 0, len(thread.Messages))
		for _, msg := range thread.Messages {
			messages = append(messages, h.viewOf(msg))
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Threads":      h.service.ListThreads(sessionID),
		"ActiveID":     activeID,
		"Messages":     messages,
		"QueryTimeout": c.Query("error") == "timeout",
	})
}

// Ask handles the query form: fan out, commit, redirect back to the index.
// A join timeout leaves history untouched and surfaces as a flash on the
// redirected page.
func (h *ChatHandler) Ask(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := h.sessionID(c)

	query := c.PostForm("query")
	if query == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	selection := ai.ParseSelection(c.PostForm("model"))

	if _, err := h.service.AskQuery(ctx, sessionID, query, selection); err != nil {
		if errors.Is(err, aggregate.ErrAggregationTimeout) {
			c.Redirect(http.StatusFound, "/?error=timeout")
			return
		}
		slog.ErrorContext(ctx, "ask failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// NewChat creates a fresh thread and makes it active.
func (h *ChatHandler) NewChat(c *gin.Context) {
	h.service.NewThread(h.sessionID(c))
	c.Redirect(http.StatusFound, "/")
}

// SwitchChat activates the thread named in the path. Stale ids are
// tolerated: the redirect happens either way.
func (h *ChatHandler) SwitchChat(c *gin.Context) {
	sessionID := h.sessionID(c)
	threadID := c.Param("chatId")

	if !h.service.SwitchThread(sessionID, threadID) {
		slog.WarnContext(c.Request.Context(), "switch to unknown thread ignored", "thread_id", threadID)
	}
	c.Redirect(http.StatusFound, "/")
}

// viewOf converts a stored message into its template form.
func (h *ChatHandler) viewOf(msg ai.Message) messageView {
	rendered := h.service.RenderForDisplay(msg)
	content := rendered.Content
	if msg.Role != ai.RoleAssistant {
		content = html.EscapeString(content)
	}
	return messageView{
		Role:    string(msg.Role),
		Label:   msg.ModelLabel,
		Content: template.HTML(content),
	}
}

// sessionID returns the client's session id, minting a new cookie when the
// request carries none.
func (h *ChatHandler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookieName); err == nil && id != "" {
		return id
	}

	id, err := generateSessionID()
	if err != nil {
		// Fall back to a per-request throwaway id; the chat still works,
		// it just won't persist across requests.
		slog.ErrorContext(c.Request.Context(), "failed to generate session id", "error", err)
		return "ephemeral"
	}

	c.SetCookie(sessionCookieName, id, sessionMaxAge, "/", "", false, true)
	return id
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
