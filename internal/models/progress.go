package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressPhoto represents a stored progress picture along with optional
// body metrics captured at upload time.
type ProgressPhoto struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	ImageURL string `gorm:"not null" json:"image_url"`
	ThumbURL string `json:"thumb_url,omitempty"`

	Weight float64 `json:"weight,omitempty"`
	Height float64 `json:"height,omitempty"`
	Age    int     `json:"age,omitempty"`
	Gender string  `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Notes  string  `gorm:"type:text" json:"notes,omitempty"`

	// Analysis is populated by the external ML service when it is
	// reachable; uploads succeed without it.
	Analysis *BodyAnalysis `gorm:"foreignKey:ProgressPhotoID;constraint:OnDelete:CASCADE" json:"analysis,omitempty"`

	Date      time.Time      `gorm:"index" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BodyAnalysis holds ML-derived estimates for a progress photo.
type BodyAnalysis struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ProgressPhotoID uint    `gorm:"not null;uniqueIndex" json:"-"`
	BodyFatEstimate float64 `json:"body_fat_estimate"`
	MuscleScore     float64 `json:"muscle_score"`
	PostureScore    float64 `json:"posture_score"`
	OverallScore    float64 `json:"overall_score"`
	Confidence      float64 `json:"confidence"`
	QualityScore    float64 `json:"quality_score"`
	CreatedAt       time.Time `json:"created_at"`
}
