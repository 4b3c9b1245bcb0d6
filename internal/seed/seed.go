package seed

import (
	"context"
	"fmt"
	"log"

	"fitflow/internal/models"
	"fitflow/internal/repository"

	"gorm.io/gorm"
)

// Options controls how much demo data the seeder creates.
type Options struct {
	NumUsers        int
	WorkoutsPerUser int
	MealsPerUser    int
	GoalsPerUser    int
	// MaxDays spreads workout and meal dates over the recent past.
	MaxDays     int
	ShouldClean bool
}

// DefaultOptions is a reasonable demo dataset.
func DefaultOptions() Options {
	return Options{
		NumUsers:        10,
		WorkoutsPerUser: 15,
		MealsPerUser:    40,
		GoalsPerUser:    3,
		MaxDays:         30,
	}
}

// Seed populates the database with demo users and their fitness logs,
// plus the built-in trivia bank.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users (%d workouts, %d meals, %d goals each)...",
		opts.NumUsers, opts.WorkoutsPerUser, opts.MealsPerUser, opts.GoalsPerUser)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}
	}

	if err := EnsureTrivia(context.Background(), repository.NewTriviaRepository(db)); err != nil {
		return fmt.Errorf("seed trivia: %w", err)
	}

	f := NewFactory(db)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		for j := 0; j < opts.WorkoutsPerUser; j++ {
			if _, err := f.CreateWorkout(user, opts.MaxDays); err != nil {
				return err
			}
		}
		for j := 0; j < opts.MealsPerUser; j++ {
			if _, err := f.CreateMeal(user, opts.MaxDays); err != nil {
				return err
			}
		}
		for j := 0; j < opts.GoalsPerUser; j++ {
			if _, err := f.CreateGoal(user); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeding complete. All demo accounts use the password %q", DemoPassword)
	return nil
}

// clearData wipes user-generated rows. The trivia question bank is
// shared content and is reseeded by EnsureTrivia when emptied.
func clearData(db *gorm.DB) error {
	tables := []any{
		&models.Exercise{}, &models.Workout{}, &models.Meal{}, &models.Goal{},
		&models.BodyAnalysis{}, &models.ProgressPhoto{},
		&models.TriviaScore{}, &models.TriviaOption{}, &models.TriviaQuestion{},
		&models.CalculatorResult{}, &models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
