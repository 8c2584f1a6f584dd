package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to postgres using the DSN built from cfg.
func Open(cfg *config.Config) (*gorm.DB, error) {
	return OpenDSN(cfg.DatabaseURL())
}

func OpenDSN(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Gorm(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	slog.Info("database connected")
	return gormDB, nil
}

// Pinger adapts a gorm handle for health checks.
type Pinger struct {
	DB *gorm.DB
}

func (p Pinger) Ping() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
