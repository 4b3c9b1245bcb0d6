package models

import (
	"time"

	"gorm.io/gorm"
)

// MealType categorizes a meal within the day.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// Meal represents a single logged meal with macro breakdown.
type Meal struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	Name     string   `gorm:"not null" json:"name"`
	MealType MealType `gorm:"type:varchar(20);not null" json:"meal_type"`
	Calories int      `gorm:"not null" json:"calories"`
	Protein  float64  `gorm:"default:0" json:"protein"`
	Carbs    float64  `gorm:"default:0" json:"carbs"`
	Fats     float64  `gorm:"default:0" json:"fats"`
	// Time is the clock time the meal was eaten ("08:30"), kept separate
	// from Date which anchors the meal to a calendar day.
	Time      string         `gorm:"not null" json:"time"`
	Date      time.Time      `gorm:"index" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ValidMealType reports whether t is one of the accepted meal types.
func ValidMealType(t MealType) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
