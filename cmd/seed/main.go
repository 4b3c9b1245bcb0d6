// Command main runs the demo-data seeder for FitFlow.
package main

import (
	"flag"
	"log"

	"fitflow/internal/config"
	"fitflow/internal/database"
	"fitflow/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	numUsers := flag.Int("users", defaults.NumUsers, "Number of demo users to create")
	workouts := flag.Int("workouts", defaults.WorkoutsPerUser, "Workouts per user")
	meals := flag.Int("meals", defaults.MealsPerUser, "Meals per user")
	goals := flag.Int("goals", defaults.GoalsPerUser, "Goals per user")
	maxDays := flag.Int("days", defaults.MaxDays, "Spread dates over the past N days")
	clean := flag.Bool("clean", false, "Wipe existing data before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:        *numUsers,
		WorkoutsPerUser: *workouts,
		MealsPerUser:    *meals,
		GoalsPerUser:    *goals,
		MaxDays:         *maxDays,
		ShouldClean:     *clean,
	}
	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
