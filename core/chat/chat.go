package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/manasdev/duochat/core/aggregate"
	"github.com/manasdev/duochat/core/conversation"
	"github.com/manasdev/duochat/core/render"
	"github.com/manasdev/duochat/providers/ai"
)

// Service composes the conversation store and the aggregator behind the
// operations exposed to the HTTP layer.
type Service struct {
	store      *conversation.Store
	aggregator *aggregate.Aggregator
}

// New returns a Service over the given store and aggregator.
func New(store *conversation.Store, aggregator *aggregate.Aggregator) *Service {
	return &Service{
		store:      store,
		aggregator: aggregator,
	}
}

// AskQuery runs one full query cycle for a session: it resolves the active
// thread (creating one lazily), fans the conversation plus the new user turn
// out to the selected providers, and commits the user message followed by
// the assistant messages in provider order (OpenAI before Gemini).
//
// Nothing is committed until the join succeeds: on [aggregate.ErrAggregationTimeout]
// the thread reads exactly as it did before the call, so the session stays
// usable for subsequent queries.
func (s *Service) AskQuery(ctx context.Context, sessionID, query string, selection ai.Selection) (*conversation.Thread, error) {
	state := s.store.GetOrCreate(sessionID)
	threadID := state.EnsureActive()

	userMsg := ai.Message{Role: ai.RoleUser, Content: query}
	history := append(state.Thread(threadID).Messages, userMsg)

	start := time.Now()
	openaiMsg, geminiMsg, err := s.aggregator.Aggregate(ctx, history, selection)
	if err != nil {
		slog.ErrorContext(ctx, "query aggregation failed",
			"thread_id", threadID,
			"selection", string(selection),
			"error", err,
		)
		return nil, fmt.Errorf("asking query: %w", err)
	}

	slog.InfoContext(ctx, "query answered",
		"thread_id", threadID,
		"selection", string(selection),
		"duration", time.Since(start),
	)

	for _, msg := range []*ai.Message{&userMsg, openaiMsg, geminiMsg} {
		if msg == nil {
			continue
		}
		if err := state.Append(threadID, *msg); err != nil {
			return nil, fmt.Errorf("committing turn: %w", err)
		}
	}

	return state.Thread(threadID), nil
}

// ListThreads returns the session's thread ids in creation order.
func (s *Service) ListThreads(sessionID string) []string {
	return s.store.GetOrCreate(sessionID).ThreadIDs()
}

// ActiveThread returns a copy of the session's active thread, or nil when
// the session has no threads yet.
func (s *Service) ActiveThread(sessionID string) *conversation.Thread {
	return s.store.GetOrCreate(sessionID).Active()
}

// NewThread creates an empty thread for the session and makes it active.
func (s *Service) NewThread(sessionID string) string {
	return s.store.GetOrCreate(sessionID).NewThread()
}

// SwitchThread makes the named thread active. Unknown ids are tolerated and
// reported as false so stale links never error.
func (s *Service) SwitchThread(sessionID, threadID string) bool {
	return s.store.GetOrCreate(sessionID).SwitchTo(threadID)
}

// RenderForDisplay prepares a message for the view. Assistant markdown is
// rendered to HTML; user messages are returned verbatim and left to the
// template's own escaping.
func (s *Service) RenderForDisplay(msg ai.Message) ai.Message {
	if msg.Role == ai.RoleAssistant {
		msg.Content = render.Render(msg.Content)
	}
	return msg
}
