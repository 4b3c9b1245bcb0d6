package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetTriviaQuestion handles GET /api/trivia/question?category=&difficulty=
func (s *Server) GetTriviaQuestion(c *fiber.Ctx) error {
	question, err := s.triviaService.RandomQuestion(c.Context(), c.Query("category"), c.Query("difficulty"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

// SubmitTriviaAnswer handles POST /api/trivia/answer
func (s *Server) SubmitTriviaAnswer(c *fiber.Ctx) error {
	var req struct {
		QuestionID uint   `json:"question_id" validate:"required"`
		Answer     string `json:"answer" validate:"required"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	result, err := s.triviaService.SubmitAnswer(c.Context(), s.userID(c), req.QuestionID, req.Answer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetTriviaStats handles GET /api/trivia/stats
func (s *Server) GetTriviaStats(c *fiber.Ctx) error {
	stats, err := s.triviaService.Stats(c.Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
