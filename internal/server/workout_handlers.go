package server

import (
	"time"

	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// workoutRequest is the JSON body for creating or updating a workout.
type workoutRequest struct {
	Title          string                  `json:"title" validate:"required,max=100"`
	Duration       int                     `json:"duration" validate:"required,min=1"`
	Difficulty     string                  `json:"difficulty" validate:"omitempty,max=20"`
	CaloriesBurned int                     `json:"calories_burned" validate:"min=0"`
	Date           time.Time               `json:"date"`
	Notes          string                  `json:"notes" validate:"max=2000"`
	Exercises      []service.ExerciseInput `json:"exercises"`
}

func (r *workoutRequest) toInput(userID uint) service.WorkoutInput {
	return service.WorkoutInput{
		UserID:         userID,
		Title:          r.Title,
		Duration:       r.Duration,
		Difficulty:     models.WorkoutDifficulty(r.Difficulty),
		CaloriesBurned: r.CaloriesBurned,
		Date:           r.Date,
		Notes:          r.Notes,
		Exercises:      r.Exercises,
	}
}

// GetWorkouts handles GET /api/workouts?period=
func (s *Server) GetWorkouts(c *fiber.Ctx) error {
	period := fitness.ParsePeriod(c.Query("period"), fitness.PeriodToday)
	workouts, err := s.workoutService.List(c.Context(), s.userID(c), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"period":   period,
		"workouts": workouts,
	})
}

// GetWorkout handles GET /api/workouts/:id
func (s *Server) GetWorkout(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	workout, err := s.workoutService.Get(c.Context(), s.userID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// CreateWorkout handles POST /api/workouts
func (s *Server) CreateWorkout(c *fiber.Ctx) error {
	var req workoutRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	workout, err := s.workoutService.Create(c.Context(), req.toInput(s.userID(c)))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// UpdateWorkout handles PUT /api/workouts/:id
func (s *Server) UpdateWorkout(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req workoutRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	workout, err := s.workoutService.Update(c.Context(), id, req.toInput(s.userID(c)))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// DeleteWorkout handles DELETE /api/workouts/:id
func (s *Server) DeleteWorkout(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.workoutService.Delete(c.Context(), s.userID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workout deleted"})
}
