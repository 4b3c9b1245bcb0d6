package server

import (
	"time"

	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mealRequest is the JSON body for creating or updating a meal.
type mealRequest struct {
	Name     string    `json:"name" validate:"required,max=100"`
	MealType string    `json:"meal_type" validate:"required,max=20"`
	Calories int       `json:"calories" validate:"min=0"`
	Protein  float64   `json:"protein" validate:"min=0"`
	Carbs    float64   `json:"carbs" validate:"min=0"`
	Fats     float64   `json:"fats" validate:"min=0"`
	Time     string    `json:"time" validate:"omitempty,max=5"`
	Date     time.Time `json:"date"`
}

func (r *mealRequest) toInput(userID uint) service.MealInput {
	return service.MealInput{
		UserID:   userID,
		Name:     r.Name,
		MealType: models.MealType(r.MealType),
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fats:     r.Fats,
		Time:     r.Time,
		Date:     r.Date,
	}
}

// GetMeals handles GET /api/nutrition/meals?period=
func (s *Server) GetMeals(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodToday)
	meals, err := s.mealService.List(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"period": period,
		"meals":  meals,
	})
}

// GetMeal handles GET /api/nutrition/meals/:id
func (s *Server) GetMeal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	meal, err := s.mealService.Get(c.Context(), s.userID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meal)
}

// CreateMeal handles POST /api/nutrition/meals
func (s *Server) CreateMeal(c *fiber.Ctx) error {
	var req mealRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	meal, err := s.mealService.Create(c.Context(), req.toInput(s.userID(c)))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// UpdateMeal handles PUT /api/nutrition/meals/:id
func (s *Server) UpdateMeal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req mealRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	meal, err := s.mealService.Update(c.Context(), id, req.toInput(s.userID(c)))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(meal)
}

// DeleteMeal handles DELETE /api/nutrition/meals/:id
func (s *Server) DeleteMeal(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.mealService.Delete(c.Context(), s.userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Meal deleted"})
}

// GetNutritionToday handles GET /api/nutrition/today?period=
func (s *Server) GetNutritionToday(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodToday)
	summary, err := s.mealService.Today(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetNutritionByDate handles GET /api/nutrition/date/:date (YYYY-MM-DD)
func (s *Server) GetNutritionByDate(c *fiber.Ctx) error {
	day, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Date must be in YYYY-MM-DD format"))
	}
	summary, err := s.mealService.ForDate(c.Context(), s.userID(c), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
