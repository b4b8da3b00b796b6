// Package db opens and prepares the shared GORM database handle.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	animeentity "anime_calendar/internal/feature/animes/domain/entity"
	authentity "anime_calendar/internal/feature/auth/domain/entity"
	favoriteentity "anime_calendar/internal/feature/favorites/domain/entity"
	"anime_calendar/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectBackoff  = 3 * time.Second
)

// Open connects to the configured database, retrying until the deadline,
// and runs a health probe before handing the connection out. The returned
// handle is shared by every repository for the process lifetime.
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func Open(cfg config.DB) (*gorm.DB, error) {
	dialector, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", connectDeadline, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(connectBackoff)
	}

	// One probe query at startup to confirm connectivity.
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("database health probe failed: %w", err)
	}
	slog.Info("database connection established", "driver", cfg.Driver)

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Ping verifies that the pooled connection is still alive. The health
// endpoint calls it on every request.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the tables of all entities. Favorites go last
// so their foreign keys find the referenced tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&animeentity.Anime{},
		&authentity.User{},
		&favoriteentity.Favorite{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// dialector builds the driver dialector for the configured backend.
func dialector(cfg config.DB) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
