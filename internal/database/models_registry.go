package database

import "fitflow/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Workout{},
		&models.Exercise{},
		&models.Meal{},
		&models.Goal{},
		&models.ProgressPhoto{},
		&models.BodyAnalysis{},
		&models.TriviaQuestion{},
		&models.TriviaOption{},
		&models.TriviaScore{},
		&models.CalculatorResult{},
	}
}
