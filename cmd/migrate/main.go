package main

import (
	"log"
	"os"

	"gym-retention-be/internal/model"
	"gym-retention-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate for 8 Tables...")

	models := []interface{}{
		&model.Member{},
		&model.Attendance{},
		&model.Payment{},
		&model.Feedback{},
		&model.ChurnPrediction{},
		&model.ModelMetrics{},
		&model.Notification{},
		&model.StaffUser{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views
	log.Println("Step 3: Creating Views...")

	postMigrationSQL := []string{
		// View: member_latest_predictions
		`CREATE OR REPLACE VIEW member_latest_predictions AS
		 SELECT DISTINCT ON (cp.member_id)
		   cp.member_id, m.full_name, m.status, cp.id AS prediction_id,
		   cp.churn_probability, cp.risk_level, cp.prediction_date
		 FROM churn_predictions cp
		 JOIN members m ON m.id = cp.member_id
		 ORDER BY cp.member_id, cp.prediction_date DESC;`,

		// View: member_payment_history
		`CREATE OR REPLACE VIEW member_payment_history AS
		 SELECT p.member_id, m.full_name, p.amount, p.due_date, p.paid_at, p.status, p.gateway_order_id
		 FROM payments p
		 JOIN members m ON m.id = p.member_id
		 ORDER BY p.due_date DESC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
