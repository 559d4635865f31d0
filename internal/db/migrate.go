package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Migrate brings the five tables up to date at startup and disconnects. The
// request path never goes through gorm; runtime queries stay on pgx.
func Migrate(ctx context.Context, databaseURL string) error {
	gormDB, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open migration db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get migration sql db: %w", err)
	}
	defer sqlDB.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctxPing); err != nil {
		return fmt.Errorf("ping migration db: %w", err)
	}

	if err := gormDB.WithContext(ctx).AutoMigrate(
		&userRow{},
		&loginRow{},
		&articleRow{},
		&commentRow{},
		&commentRespRow{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}
