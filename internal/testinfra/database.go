package testinfra

import (
	"log"
	"strings"

	"sep-workflow/internal/database"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StartTestDatabase opens an isolated in-memory database with the full schema.
func StartTestDatabase() *gorm.DB {
	name := "sep_test_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		log.Fatalf("failed to open test database %s: %v\n", name, err)
	}

	// one connection keeps the in-memory database alive and serializes writers
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access test database %s: %v\n", name, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate test database %s: %v\n", name, err)
	}
	return db
}

func StopTestDatabase(db *gorm.DB) {
	if db != nil {
		database.Close(db)
	}
}
