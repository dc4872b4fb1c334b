package handlers

import (
	"fmt"
	"testing"

	"github.com/CristianV1-A/idoe-projeto/internal/config"
	"github.com/CristianV1-A/idoe-projeto/internal/database"
	"github.com/CristianV1-A/idoe-projeto/internal/models"
	"github.com/CristianV1-A/idoe-projeto/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing.
// Each test gets its own named shared-cache database so ids start at 1
// and fixtures don't leak between tests.
func SetupTestDB(t *testing.T) {
	config.AppConfig = &config.Config{}
	logger.Init("test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ClothingItem{},
		&models.Chat{},
		&models.Message{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
}

func strPtr(s string) *string { return &s }
