package service

import (
	"context"
	"time"

	"fitflow/internal/cache"
	"fitflow/internal/fitness"
	"fitflow/internal/models"
	"fitflow/internal/repository"
)

// GoalService manages numeric goals and their derived progress.
type GoalService struct {
	goalRepo repository.GoalRepository
	now      func() time.Time
}

// NewGoalService returns a new GoalService.
func NewGoalService(goalRepo repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo, now: time.Now}
}

// GoalWithProgress decorates a goal with its derived progress numbers.
type GoalWithProgress struct {
	models.Goal
	Progress fitness.GoalProgress `json:"progress"`
}

// GoalInput is the payload for creating a goal.
type GoalInput struct {
	UserID   uint
	Title    string
	Current  float64
	Target   float64
	Unit     string
	Category models.GoalCategory
}

func (in *GoalInput) validate() error {
	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if in.Unit == "" {
		return models.NewValidationError("Unit is required")
	}
	if in.Category == "" {
		in.Category = models.GoalOther
	}
	if !models.ValidGoalCategory(in.Category) {
		return models.NewValidationError("Invalid category")
	}
	return nil
}

// Create stores a new goal, snapshotting the starting value so later
// progress is measured against it.
func (s *GoalService) Create(ctx context.Context, in GoalInput) (*GoalWithProgress, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	initial := in.Current
	goal := &models.Goal{
		UserID:   in.UserID,
		Title:    in.Title,
		Initial:  &initial,
		Current:  in.Current,
		Target:   in.Target,
		Unit:     in.Unit,
		Category: in.Category,
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, in.UserID)
	return s.withProgress(goal), nil
}

// List returns the user's goals created within the period, with
// progress attached.
func (s *GoalService) List(ctx context.Context, userID uint, period fitness.Period) ([]GoalWithProgress, error) {
	var since *time.Time
	if start, ok := period.Start(s.now()); ok {
		since = &start
	}
	goals, err := s.goalRepo.ListByUser(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	out := make([]GoalWithProgress, 0, len(goals))
	for i := range goals {
		out = append(out, *s.withProgress(&goals[i]))
	}
	return out, nil
}

// Get returns one goal owned by the user with progress attached.
func (s *GoalService) Get(ctx context.Context, userID, id uint) (*GoalWithProgress, error) {
	goal, err := s.goalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.withProgress(goal), nil
}

// UpdateGoalInput carries the mutable goal fields. Nil pointers leave
// the stored value untouched; the initial snapshot never changes.
type UpdateGoalInput struct {
	UserID   uint
	Title    *string
	Current  *float64
	Target   *float64
	Unit     *string
	Category *models.GoalCategory
}

// Update applies partial changes to a goal.
func (s *GoalService) Update(ctx context.Context, id uint, in UpdateGoalInput) (*GoalWithProgress, error) {
	goal, err := s.goalRepo.GetByID(ctx, in.UserID, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		goal.Title = *in.Title
	}
	if in.Current != nil {
		goal.Current = *in.Current
	}
	if in.Target != nil {
		goal.Target = *in.Target
	}
	if in.Unit != nil {
		if *in.Unit == "" {
			return nil, models.NewValidationError("Unit cannot be empty")
		}
		goal.Unit = *in.Unit
	}
	if in.Category != nil {
		if !models.ValidGoalCategory(*in.Category) {
			return nil, models.NewValidationError("Invalid category")
		}
		goal.Category = *in.Category
	}
	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, in.UserID)
	return s.withProgress(goal), nil
}

// Delete removes a goal owned by the user.
func (s *GoalService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.goalRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (s *GoalService) withProgress(goal *models.Goal) *GoalWithProgress {
	return &GoalWithProgress{
		Goal:     *goal,
		Progress: fitness.ComputeGoalProgress(goal),
	}
}
