package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/friendmatch/backend/internal/config"
	"github.com/friendmatch/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return MigrateDB(DB)
}

// MigrateDB migrates the given database and creates the indexes
// AutoMigrate cannot express.
func MigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Interest{},
		&models.UserInterest{},
		&models.FriendRequest{},
		&models.Friendship{},
		&models.SystemLog{},
	); err != nil {
		return err
	}
	return createPendingPairIndex(db)
}

// At most one pending request per user pair, regardless of direction.
// The service checks before inserting; this index closes the race between
// two concurrent sends.
func createPendingPairIndex(db *gorm.DB) error {
	pair := "LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id)"
	if db.Dialector.Name() == "sqlite" {
		pair = "MIN(sender_id, receiver_id), MAX(sender_id, receiver_id)"
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_requests_pending_pair " +
		"ON friend_requests (" + pair + ") WHERE status = 'pending'").Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
