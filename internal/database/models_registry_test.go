package database

import (
	"testing"

	"fitflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestPersistentModelsMigrate(t *testing.T) {
	t.Parallel()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	for _, table := range []string{
		"users", "workouts", "exercises", "meals", "goals",
		"progress_photos", "body_analyses",
		"trivia_questions", "trivia_options", "trivia_scores",
		"calculator_results",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestBackfillGoalInitial(t *testing.T) {
	t.Parallel()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	user := models.User{Name: "Backfill", Email: "backfill@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	snapshot := 90.0
	legacy := models.Goal{UserID: user.ID, Title: "Legacy", Current: 80, Target: 70, Unit: "kg"}
	modern := models.Goal{UserID: user.ID, Title: "Modern", Initial: &snapshot, Current: 80, Target: 70, Unit: "kg"}
	require.NoError(t, db.Create(&legacy).Error)
	require.NoError(t, db.Create(&modern).Error)

	require.NoError(t, BackfillGoalInitial(db))

	var got models.Goal
	require.NoError(t, db.First(&got, legacy.ID).Error)
	require.NotNil(t, got.Initial)
	assert.Equal(t, 80.0, *got.Initial)

	// Rows that already carry a snapshot are untouched.
	got = models.Goal{}
	require.NoError(t, db.First(&got, modern.ID).Error)
	require.NotNil(t, got.Initial)
	assert.Equal(t, snapshot, *got.Initial)
}
