package service

import (
	"context"
	"strings"

	"fitflow/internal/coach"
	"fitflow/internal/models"
)

const maxCoachMessageLen = 4000
const maxCoachHistoryTurns = 20

// CoachService relays coaching conversations to the LLM provider.
// Conversations are client-held; the server keeps no chat state.
type CoachService struct {
	llm coach.LLM
}

// NewCoachService returns a new CoachService. llm may be nil when no
// provider is configured.
func NewCoachService(llm coach.LLM) *CoachService {
	return &CoachService{llm: llm}
}

// Chat sends the user's message with recent history to the provider and
// returns the coach's reply.
func (s *CoachService) Chat(ctx context.Context, history []coach.Message, message string) (string, error) {
	if s.llm == nil {
		return "", models.NewUnavailableError("Coach is not available")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", models.NewValidationError("Message is required")
	}
	if len(message) > maxCoachMessageLen {
		return "", models.NewValidationError("Message too long")
	}
	for _, m := range history {
		if m.Role != "user" && m.Role != "assistant" {
			return "", models.NewValidationError("Invalid history role")
		}
	}
	// Bound the context window; old turns matter least.
	if len(history) > maxCoachHistoryTurns {
		history = history[len(history)-maxCoachHistoryTurns:]
	}

	reply, err := s.llm.Chat(ctx, history, message)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return reply, nil
}
