package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB owns the database handle for the process lifetime. Connection pooling
// stays inside the driver.
type DB struct {
	Gorm *gorm.DB
	log  zerolog.Logger
}

// InitDB opens the PostgreSQL connection through GORM and verifies it with a
// ping. TranslateError turns driver constraint errors into gorm's sentinel
// errors so they classify uniformly downstream.
func InitDB(cfg *Config, log zerolog.Logger) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to PostgreSQL")
	return &DB{Gorm: db, log: log}, nil
}

// CloseDB closes the database connection.
func (d *DB) CloseDB() {
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		d.log.Error().Err(err).Msg("getting sql db from gorm")
		return
	}
	if err := sqlDB.Close(); err != nil {
		d.log.Error().Err(err).Msg("closing PostgreSQL connection")
		return
	}
	d.log.Info().Msg("PostgreSQL connection closed")
}
