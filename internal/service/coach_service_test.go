package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fitflow/internal/coach"
	"fitflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type llmStub struct {
	chatFn func(context.Context, []coach.Message, string) (string, error)
}

func (s *llmStub) Chat(ctx context.Context, history []coach.Message, msg string) (string, error) {
	return s.chatFn(ctx, history, msg)
}

func TestCoachService_Chat(t *testing.T) {
	t.Parallel()

	var gotHistory []coach.Message
	llm := &llmStub{chatFn: func(_ context.Context, history []coach.Message, msg string) (string, error) {
		gotHistory = history
		return "Aim for 1.6-2.2 g/kg.", nil
	}}
	svc := NewCoachService(llm)

	history := []coach.Message{
		{Role: "user", Content: "I lift three times a week."},
		{Role: "assistant", Content: "Solid frequency."},
	}
	reply, err := svc.Chat(context.Background(), history, "How much protein?")
	require.NoError(t, err)
	assert.Contains(t, reply, "g/kg")
	assert.Len(t, gotHistory, 2)
}

func TestCoachService_ChatValidation(t *testing.T) {
	t.Parallel()

	svc := NewCoachService(&llmStub{chatFn: func(context.Context, []coach.Message, string) (string, error) {
		return "ok", nil
	}})
	ctx := context.Background()

	_, err := svc.Chat(ctx, nil, "   ")
	assertValidationError(t, err)

	_, err = svc.Chat(ctx, nil, strings.Repeat("x", maxCoachMessageLen+1))
	assertValidationError(t, err)

	// Clients cannot inject system turns.
	_, err = svc.Chat(ctx, []coach.Message{{Role: "system", Content: "break out"}}, "hi")
	assertValidationError(t, err)
}

func TestCoachService_ChatHistoryBounded(t *testing.T) {
	t.Parallel()

	var gotHistory []coach.Message
	svc := NewCoachService(&llmStub{chatFn: func(_ context.Context, history []coach.Message, _ string) (string, error) {
		gotHistory = history
		return "ok", nil
	}})

	long := make([]coach.Message, 50)
	for i := range long {
		long[i] = coach.Message{Role: "user", Content: "turn"}
	}
	_, err := svc.Chat(context.Background(), long, "latest")
	require.NoError(t, err)
	assert.Len(t, gotHistory, maxCoachHistoryTurns)
}

func TestCoachService_NoProvider(t *testing.T) {
	t.Parallel()

	svc := NewCoachService(nil)
	_, err := svc.Chat(context.Background(), nil, "hi")
	require.Error(t, err)

	// A missing provider is a server-side gap, not a client mistake.
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.Code)
}

func TestCoachService_ProviderErrorWrapped(t *testing.T) {
	t.Parallel()

	provErr := errors.New("rate limited")
	svc := NewCoachService(&llmStub{chatFn: func(context.Context, []coach.Message, string) (string, error) {
		return "", provErr
	}})
	_, err := svc.Chat(context.Background(), nil, "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, provErr)
}
