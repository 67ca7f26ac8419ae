package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/manasdev/duochat/providers/ai"
)

// DefaultTimeout bounds the wait for both provider calls to complete.
const DefaultTimeout = 60 * time.Second

// ErrAggregationTimeout is returned when the bounded join expires before
// both provider calls complete. Callers must treat it as fatal for the
// current request and leave conversation history untouched; in-flight calls
// are abandoned best-effort via context cancellation.
var ErrAggregationTimeout = errors.New("aggregate: providers did not complete within the deadline")

// Aggregator dispatches concurrent calls to the OpenAI and Gemini providers
// and merges their normalized results into labeled assistant messages.
type Aggregator struct {
	openai  ai.Provider
	gemini  ai.Provider
	timeout time.Duration
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTimeout overrides the join deadline. Values <= 0 are ignored.
func WithTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// New returns an Aggregator over the two providers with [DefaultTimeout].
func New(openaiProvider, geminiProvider ai.Provider, opts ...Option) *Aggregator {
	a := &Aggregator{
		openai:  openaiProvider,
		gemini:  geminiProvider,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate issues the provider calls implied by selection concurrently and
// waits for both outcomes. The two returned messages are independent: nil
// when the corresponding provider was not selected. The OpenAI message must
// always be committed to history before the Gemini one; the return order
// encodes that, independent of which call finished first.
func (a *Aggregator) Aggregate(ctx context.Context, history []ai.Message, selection ai.Selection) (openaiMsg, geminiMsg *ai.Message, err error) {
	// Cancelling the context abandons whichever calls are still in flight
	// once the join gives up.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	openaiCh := dispatch(ctx, a.openai, history, selection.OpenAI())
	geminiCh := dispatch(ctx, a.gemini, history, selection.Gemini())

	start := time.Now()
	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	var rawOpenAI, rawGemini string
	gotOpenAI, gotGemini := false, false
	for !gotOpenAI || !gotGemini {
		select {
		case rawOpenAI = <-openaiCh:
			gotOpenAI = true
			openaiCh = nil
		case rawGemini = <-geminiCh:
			gotGemini = true
			geminiCh = nil
		case <-timer.C:
			slog.Warn("aggregation join timed out",
				"timeout", a.timeout,
				"openai_done", gotOpenAI,
				"gemini_done", gotGemini,
			)
			return nil, nil, ErrAggregationTimeout
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("%w: %v", ErrAggregationTimeout, ctx.Err())
		}
	}

	slog.Debug("aggregation join completed",
		"selection", string(selection),
		"duration", time.Since(start),
	)

	if selection.OpenAI() {
		openaiMsg = assistantMessage(a.openai, rawOpenAI)
	}
	if selection.Gemini() {
		geminiMsg = assistantMessage(a.gemini, rawGemini)
	}
	return openaiMsg, geminiMsg, nil
}

// dispatch launches the provider call on its own goroutine, or delivers the
// placeholder payload immediately when the provider is not selected. The
// channel is buffered so an abandoned goroutine can still complete its send.
func dispatch(ctx context.Context, provider ai.Provider, history []ai.Message, selected bool) chan string {
	ch := make(chan string, 1)
	if !selected {
		ch <- ai.NotCalledPayload
		return ch
	}
	go func() {
		ch <- provider.Call(ctx, history)
	}()
	return ch
}

// assistantMessage normalizes a raw provider result and wraps it into an
// assistant turn labeled "<ProviderName>: <model>".
func assistantMessage(provider ai.Provider, raw string) *ai.Message {
	result := provider.Normalize(raw)
	return &ai.Message{
		Role:       ai.RoleAssistant,
		Content:    result.Text,
		ModelLabel: provider.Name() + ": " + result.ModelLabel,
	}
}
