package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutDifficulty is the self-reported difficulty of a workout session.
type WorkoutDifficulty string

const (
	DifficultyBeginner     WorkoutDifficulty = "Beginner"
	DifficultyIntermediate WorkoutDifficulty = "Intermediate"
	DifficultyAdvanced     WorkoutDifficulty = "Advanced"
)

// Workout represents a single logged workout session with its exercises.
type Workout struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"not null;index" json:"user_id"`
	Title          string            `gorm:"not null" json:"title"`
	Exercises      []Exercise        `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises"`
	Duration       int               `gorm:"not null" json:"duration"`
	Difficulty     WorkoutDifficulty `gorm:"type:varchar(20);default:'Intermediate'" json:"difficulty"`
	CaloriesBurned int               `gorm:"default:0" json:"calories_burned"`
	Date           time.Time         `gorm:"index" json:"date"`
	Notes          string            `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}

// Exercise is one entry in a workout's exercise list.
type Exercise struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	WorkoutID uint    `gorm:"not null;index" json:"-"`
	Name      string  `gorm:"not null" json:"name"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Duration  int     `json:"duration"`
}

// ValidDifficulty reports whether d is one of the accepted difficulty values.
func ValidDifficulty(d WorkoutDifficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
