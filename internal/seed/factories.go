// Package seed provides helpers to create demo and test data for the
// application database. Intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"fitflow/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password shared by all seeded accounts.
const DemoPassword = "Demo!Pass123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seedVal := time.Now().UnixNano()
	gofakeit.Seed(seedVal)
	return &Factory{db: db, rng: rand.New(rand.NewSource(seedVal))}
}

var (
	workoutTitles = []string{
		"Push Day", "Pull Day", "Leg Day", "Upper Body", "Lower Body",
		"Full Body Circuit", "Morning Run", "Evening Run", "HIIT Session",
		"Core Blast", "Yoga Flow", "Swimming Laps", "Cycling Intervals",
	}

	exerciseNames = []string{
		"Bench Press", "Squat", "Deadlift", "Overhead Press", "Barbell Row",
		"Pull-up", "Dip", "Lunge", "Plank", "Bicep Curl", "Tricep Extension",
		"Lat Pulldown", "Leg Press", "Calf Raise", "Russian Twist",
	}

	mealNames = map[models.MealType][]string{
		models.MealBreakfast: {"Oatmeal with Berries", "Scrambled Eggs", "Greek Yogurt Bowl", "Protein Pancakes", "Avocado Toast"},
		models.MealLunch:     {"Chicken Rice Bowl", "Tuna Salad", "Turkey Wrap", "Quinoa Salad", "Lentil Soup"},
		models.MealDinner:    {"Grilled Salmon", "Beef Stir Fry", "Pasta Bolognese", "Baked Chicken Breast", "Veggie Curry"},
		models.MealSnack:     {"Protein Shake", "Mixed Nuts", "Apple with Peanut Butter", "Cottage Cheese", "Rice Cakes"},
	}

	mealTypes = []models.MealType{
		models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack,
	}

	goalTemplates = []struct {
		title    string
		unit     string
		category models.GoalCategory
	}{
		{"Reach target weight", "kg", models.GoalWeight},
		{"Bench press bodyweight", "kg", models.GoalStrength},
		{"Run a 10k", "km", models.GoalEndurance},
		{"Drink more water", "l/day", models.GoalOther},
	}

	activityLevels = []string{
		models.ActivitySedentary, models.ActivityLight,
		models.ActivityModerate, models.ActivityVery,
	}
)

// CreateUser persists a demo user with a complete body profile.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	weight := 55 + f.rng.Float64()*45
	user := &models.User{
		Name:          gofakeit.Name(),
		Email:         gofakeit.Email(),
		Password:      string(hashed),
		CurrentWeight: round1(weight),
		TargetWeight:  round1(weight - 5 + f.rng.Float64()*10),
		Height:        round1(155 + f.rng.Float64()*40),
		Age:           18 + f.rng.Intn(45),
		Gender:        pick(f.rng, []string{models.GenderMale, models.GenderFemale, models.GenderOther}),
		ActivityLevel: pick(f.rng, activityLevels),
		CalorieGoal:   1800 + 100*f.rng.Intn(10),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateWorkout persists a workout for the user, dated within the past
// maxDays so weekly charts and the streak have material.
func (f *Factory) CreateWorkout(user *models.User, maxDays int) (*models.Workout, error) {
	exercises := make([]models.Exercise, 0, 3)
	for i := 0; i < 2+f.rng.Intn(3); i++ {
		exercises = append(exercises, models.Exercise{
			Name:   pick(f.rng, exerciseNames),
			Sets:   3 + f.rng.Intn(3),
			Reps:   5 + f.rng.Intn(10),
			Weight: round1(20 + f.rng.Float64()*80),
		})
	}

	workout := &models.Workout{
		UserID:         user.ID,
		Title:          pick(f.rng, workoutTitles),
		Exercises:      exercises,
		Duration:       20 + f.rng.Intn(70),
		Difficulty:     pick(f.rng, []models.WorkoutDifficulty{models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced}),
		CaloriesBurned: 150 + f.rng.Intn(500),
		Date:           f.pastTime(maxDays),
	}
	if err := f.db.Create(workout).Error; err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return workout, nil
}

// CreateMeal persists a meal for the user, dated within the past maxDays.
func (f *Factory) CreateMeal(user *models.User, maxDays int) (*models.Meal, error) {
	mealType := pick(f.rng, mealTypes)
	date := f.pastTime(maxDays)
	meal := &models.Meal{
		UserID:   user.ID,
		Name:     pick(f.rng, mealNames[mealType]),
		MealType: mealType,
		Calories: 150 + f.rng.Intn(700),
		Protein:  round1(5 + f.rng.Float64()*45),
		Carbs:    round1(10 + f.rng.Float64()*80),
		Fats:     round1(2 + f.rng.Float64()*30),
		Time:     date.Format("15:04"),
		Date:     date,
	}
	if err := f.db.Create(meal).Error; err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// CreateGoal persists a goal part-way toward its target.
func (f *Factory) CreateGoal(user *models.User) (*models.Goal, error) {
	tpl := goalTemplates[f.rng.Intn(len(goalTemplates))]
	target := round1(10 + f.rng.Float64()*90)
	initial := round1(target * (0.4 + f.rng.Float64()*0.4))
	current := round1(initial + (target-initial)*f.rng.Float64())

	goal := &models.Goal{
		UserID:   user.ID,
		Title:    tpl.title,
		Initial:  &initial,
		Current:  current,
		Target:   target,
		Unit:     tpl.unit,
		Category: tpl.category,
	}
	if err := f.db.Create(goal).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

func (f *Factory) pastTime(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 30
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(14))*time.Hour
	return time.Now().UTC().Add(-back)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
