package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shelfshare/shelfshare-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the tables the portable
// gorm paths touch. The users table is Postgres-specific (text[]
// columns) and stays out; book-log paths are covered at the handler
// level with a fake store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Review{},
		&models.ReviewLike{},
		&models.Follow{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
