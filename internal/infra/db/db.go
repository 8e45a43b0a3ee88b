package db

import (
	"context"
	"errors"
	"time"

	"github.com/ds611b/practicas/internal/config"
	"github.com/ds611b/practicas/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// New opens the PostgreSQL pool. SQL warnings and slow queries go to log.
func New(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, errors.New("database.dsn is not set")
	}

	level := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		level = gormlogger.Info
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.New(zapWriter{log.Sugar()}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return d, nil
}

// Migrate creates or alters every table the registry lists, with their foreign keys and indexes.
func Migrate(d *gorm.DB, reg *model.Registry) error {
	return d.AutoMigrate(reg.Models()...)
}

func Ping(ctx context.Context, d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// RegisterOpenTelemetryPlugin adds a span to every query. Call it after the tracer provider is set.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

type zapWriter struct {
	s *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...any) {
	w.s.Infof(format, args...)
}
