// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"profilesync/config"
	"profilesync/internal/domain/lifecycle"
	"profilesync/internal/errors"
	"profilesync/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured SQLite database, migrates it and ties its lifetime to the app.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Database.DSN, newGormSlogLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	if n := params.Config.Database.MaxOpenConns; n > 0 {
		sqlDB.SetMaxOpenConns(n)
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}
			params.Logger.Info("SQLite database ready", slog.String("dsn", params.Config.Database.DSN))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to dsn and applies the schema.
func Open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Explicit transactions go through txManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the profile tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.ProfileModel{},
		&model.FriendshipModel{},
		&model.SubscriptionModel{},
	)

	return errors.Wrap(err, "failed to migrate schema")
}
