// Command migrate runs schema operations for the backend.
//
// Connect applies the schema automatically outside production, so this
// command exists for production rollouts and for inspecting drift.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"fitflow/internal/config"
	"fitflow/internal/database"

	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	switch cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0))); cmd {
	case "up":
		if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
			return fmt.Errorf("schema apply failed: %w", err)
		}
		if err := database.BackfillGoalInitial(db); err != nil {
			return err
		}
		log.Println("schema applied")
	case "status":
		for _, model := range database.PersistentModels() {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return fmt.Errorf("parse model: %w", err)
			}
			state := "present"
			if !db.Migrator().HasTable(model) {
				state = "missing"
			}
			log.Printf("%-20s %s", stmt.Schema.Table, state)
		}
	default:
		return usage()
	}

	return nil
}
