package models

import (
	"time"

	"gorm.io/gorm"
)

// GoalCategory groups goals for filtering in the UI.
type GoalCategory string

const (
	GoalWeight    GoalCategory = "weight"
	GoalStrength  GoalCategory = "strength"
	GoalEndurance GoalCategory = "endurance"
	GoalOther     GoalCategory = "other"
)

// Goal represents a numeric target the user is working toward.
// Initial is snapshotted at creation so that progress for decreasing
// goals (e.g. weight loss) can be measured against the starting point.
type Goal struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Title  string `gorm:"not null" json:"title"`
	// Initial is nullable: rows created before the column existed carry
	// NULL and fall back to Current at read time.
	Initial   *float64       `json:"initial,omitempty"`
	Current   float64        `gorm:"not null" json:"current"`
	Target    float64        `gorm:"not null" json:"target"`
	Unit      string         `gorm:"not null" json:"unit"`
	Category  GoalCategory   `gorm:"type:varchar(20);default:'other'" json:"category"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InitialValue returns the starting value, treating legacy rows without
// one as having started at the current value.
func (g *Goal) InitialValue() float64 {
	if g.Initial == nil {
		return g.Current
	}
	return *g.Initial
}

// ValidGoalCategory reports whether c is one of the accepted categories.
func ValidGoalCategory(c GoalCategory) bool {
	switch c {
	case GoalWeight, GoalStrength, GoalEndurance, GoalOther:
		return true
	}
	return false
}
