// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender values accepted on user profiles and calculator requests.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Activity levels used for TDEE computation and profile defaults.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "lightly"
	ActivityModerate   = "moderately"
	ActivityVery       = "very"
	ActivityExtreme    = "extremely"
	DefaultCalorieGoal = 2000
)

// User represents a FitFlow account along with its body metrics profile.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	CurrentWeight float64 `json:"current_weight"`
	TargetWeight  float64 `json:"target_weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	Gender        string  `gorm:"type:varchar(10);default:'other'" json:"gender"`
	ActivityLevel string  `gorm:"type:varchar(20);default:'moderately'" json:"activity_level"`
	CalorieGoal   int     `gorm:"default:2000" json:"calorie_goal"`

	// Password reset state. The token column stores a sha256 digest,
	// never the raw token that was mailed out.
	ResetPasswordToken  string     `gorm:"index" json:"-"`
	ResetPasswordExpiry *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasCompleteProfile reports whether enough body metrics are present for
// BMI and goal-progress derivations.
func (u *User) HasCompleteProfile() bool {
	return u.CurrentWeight > 0 && u.TargetWeight > 0 && u.Height > 0
}

// EffectiveCalorieGoal returns the configured daily calorie goal,
// falling back to the application default when unset.
func (u *User) EffectiveCalorieGoal() int {
	if u.CalorieGoal <= 0 {
		return DefaultCalorieGoal
	}
	return u.CalorieGoal
}
