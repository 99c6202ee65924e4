package database

import (
	"fmt"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/config"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/survey-builder-api/internal/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database without touching the schema.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Multi-row writes open their own transactions explicitly
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                utils.Now,
		Logger:                 NewLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		// SQLite serializes writers; one connection also keeps the pragma in effect
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		return db, nil
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// SetupDatabase opens the database, migrates the schema and seeds the
// administrator when one is configured.
func SetupDatabase(cfg config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := migrations.AddIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}

	if cfg.Admin.Enabled() {
		if _, err := migrations.SeedAdmin(db, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return nil, fmt.Errorf("failed to seed admin user: %w", err)
		}
	}

	return db, nil
}
