package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.MemberRepository())
	assert.NotNil(t, uow.ChurnPredictionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Member Repository", func(t *testing.T) {
		count, err := uow.MemberRepository().CountByStatus(context.Background(), entity.MemberStatusActive)
		assert.NoError(t, err)
		t.Logf("Active member count: %d", count)
	})

	t.Run("Check Prediction Repository", func(t *testing.T) {
		breakdown, err := uow.ChurnPredictionRepository().CountByRiskLevel(context.Background())
		assert.NoError(t, err)
		t.Logf("Risk breakdown: %v", breakdown)
	})
}
