package services

import (
	"testing"
	"time"

	"github.com/friendmatch/backend/internal/config"
	"github.com/friendmatch/backend/internal/database"
	"github.com/friendmatch/backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateDB(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		StoreTimeout:     5 * time.Second,
	}
}

func seedCatalog(t *testing.T, db *gorm.DB, interests ...models.Interest) {
	t.Helper()
	require.NoError(t, db.Create(&interests).Error)
}

// seedUser creates a profile and selects the given interests for it.
func seedUser(t *testing.T, db *gorm.DB, username string, interestIDs ...uint) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&models.Profile{ID: id, Username: username}).Error)
	for _, interestID := range interestIDs {
		require.NoError(t, db.Create(&models.UserInterest{UserID: id, InterestID: interestID}).Error)
	}
	return id
}
