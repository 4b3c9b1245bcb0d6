// Package coach wraps the LLM provider behind a narrow chat interface.
package coach

import "context"

// Message is one turn of a coaching conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// LLM produces a coach reply for a conversation. Implementations are
// remote providers or test fakes.
type LLM interface {
	Chat(ctx context.Context, history []Message, userMessage string) (string, error)
}

// SystemPrompt keeps the coach on fitness and nutrition topics.
const SystemPrompt = `You are FitFlow Coach, a friendly fitness and nutrition assistant.
Answer questions about training, workouts, nutrition, recovery, and healthy habits.
Keep answers practical and encouraging. If asked about anything unrelated to
fitness, nutrition, or wellbeing, politely steer the conversation back.
Never give medical diagnoses; suggest consulting a professional instead.`
