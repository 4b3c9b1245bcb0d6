package server

import (
	"fitflow/internal/coach"

	"github.com/gofiber/fiber/v2"
)

// CoachChat handles POST /api/ai-coach/chat. The conversation history
// is client-held; each request carries the prior turns.
func (s *Server) CoachChat(c *fiber.Ctx) error {
	var req struct {
		Message string          `json:"message" validate:"required"`
		History []coach.Message `json:"history"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	reply, err := s.coachService.Chat(c.Context(), req.History, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"reply": reply})
}
