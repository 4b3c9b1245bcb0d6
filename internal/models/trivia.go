package models

import (
	"time"
)

// TriviaCategory groups questions by nutrition topic.
type TriviaCategory string

const (
	TriviaVitamins       TriviaCategory = "vitamins"
	TriviaMacronutrients TriviaCategory = "macronutrients"
	TriviaMinerals       TriviaCategory = "minerals"
	TriviaHydration      TriviaCategory = "hydration"
	TriviaGeneral        TriviaCategory = "general"
)

// TriviaDifficulty rates how hard a question is.
type TriviaDifficulty string

const (
	TriviaEasy   TriviaDifficulty = "easy"
	TriviaMedium TriviaDifficulty = "medium"
	TriviaHard   TriviaDifficulty = "hard"
)

// PointsPerCorrectAnswer is the fixed score reward; difficulty does not
// change the payout.
const PointsPerCorrectAnswer = 10

// TriviaQuestion is a shared question-bank entry, not owned by any user.
type TriviaQuestion struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Question      string           `gorm:"type:text;not null" json:"question"`
	Options       []TriviaOption   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
	CorrectAnswer string           `gorm:"not null" json:"-"`
	Category      TriviaCategory   `gorm:"type:varchar(20);default:'general';index" json:"category"`
	Difficulty    TriviaDifficulty `gorm:"type:varchar(10);default:'medium';index" json:"difficulty"`
	Explanation   string           `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TriviaOption is one answer choice, ordered by Position.
type TriviaOption struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	QuestionID uint   `gorm:"not null;index" json:"-"`
	Position   int    `gorm:"not null" json:"-"`
	Text       string `gorm:"not null" json:"text"`
}

// TriviaScore is the single running score row per user.
type TriviaScore struct {
	ID             uint       `gorm:"primaryKey" json:"-"`
	UserID         uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	TotalScore     int        `gorm:"default:0" json:"total_score"`
	TotalAnswered  int        `gorm:"default:0" json:"total_answered"`
	CorrectAnswers int        `gorm:"default:0" json:"correct_answers"`
	CurrentStreak  int        `gorm:"default:0" json:"current_streak"`
	LastPlayedDate *time.Time `json:"last_played_date,omitempty"`
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`
}
