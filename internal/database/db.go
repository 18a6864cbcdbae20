package database

import (
	"fmt"
	"time"

	"sep-workflow/internal/config"
	"sep-workflow/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxAttempts = 10

var retryDelay = 2 * time.Second

// Open connects to the configured database, retrying while it comes up.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if cfg.Development() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= maxAttempts; i++ {
		logrus.Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(dialector(cfg), gormCfg)
		if err == nil {
			logrus.Info("connected to DB successfully")
			return db, nil
		}

		logrus.Warnf("failed to connect to DB: %v", err)
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == "sqlite" {
		return sqlite.Open(cfg.DBDSN)
	}
	return postgres.Open(cfg.DBDSN)
}

// Migrate creates or updates every table of the workflow.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Employee{},
		&models.Team{},
		&models.TeamMember{},
		&models.Customer{},
		&models.RawRequest{},
		&models.Meeting{},
		&models.Project{},
		&models.Task{},
		&models.FinancialRequest{},
		&models.RecruitmentPost{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Warnf("failed to close DB: %v", err)
	}
}
