package server

import (
	"fitflow/internal/models"
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Calculate handles POST /api/calculator/calculate
func (s *Server) Calculate(c *fiber.Ctx) error {
	var req struct {
		Age           int     `json:"age" validate:"required"`
		Weight        float64 `json:"weight" validate:"required"`
		Height        float64 `json:"height" validate:"required"`
		Gender        string  `json:"gender" validate:"required,max=10"`
		ActivityLevel string  `json:"activity_level" validate:"required,max=20"`
		Objective     string  `json:"objective" validate:"omitempty,max=20"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	result, err := s.calculatorService.Calculate(c.Context(), service.CalculateInput{
		UserID:        s.userID(c),
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Objective:     models.CalorieObjective(req.Objective),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetCalculatorHistory handles GET /api/calculator/history
func (s *Server) GetCalculatorHistory(c *fiber.Ctx) error {
	history, err := s.calculatorService.History(c.Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"history": history})
}
