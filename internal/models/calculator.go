package models

import (
	"time"
)

// CalorieObjective adjusts TDEE toward a body-composition goal.
type CalorieObjective string

const (
	ObjectiveGainMass    CalorieObjective = "gain_mass"
	ObjectiveLoseFat     CalorieObjective = "lose_fat"
	ObjectiveMaintenance CalorieObjective = "maintenance"
)

// CalculatorResult is an append-only audit row for one BMR/TDEE
// calculation. Rows are never updated after creation.
type CalculatorResult struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	UserID        uint             `gorm:"not null;index" json:"user_id"`
	Age           int              `gorm:"not null" json:"age"`
	Weight        float64          `gorm:"not null" json:"weight"`
	Height        float64          `gorm:"not null" json:"height"`
	Gender        string           `gorm:"type:varchar(10);not null" json:"gender"`
	ActivityLevel string           `gorm:"type:varchar(20);not null" json:"activity_level"`
	Objective     CalorieObjective `gorm:"type:varchar(20);default:'maintenance'" json:"objective"`
	BMR           int              `gorm:"not null" json:"bmr"`
	TDEE          int              `gorm:"not null" json:"tdee"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ValidObjective reports whether o is one of the accepted objectives.
func ValidObjective(o CalorieObjective) bool {
	switch o {
	case ObjectiveGainMass, ObjectiveLoseFat, ObjectiveMaintenance:
		return true
	}
	return false
}
