package repository

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLOptions configures the GORM connection used by CardGormRepository.
type MySQLOptions struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// LogLevel is the GORM log level: "silent", "error", "warn" or "info".
	LogLevel        string
	ConnectAttempts int
	RetryInterval   time.Duration
}

// OpenMySQL connects to MySQL, retrying until the server answers a ping.
func OpenMySQL(opts MySQLOptions, log *slog.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Writes that need atomicity open their own transaction.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger(opts.LogLevel),
	}
	attempts := opts.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(mysql.Open(opts.DSN), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					break
				}
			} else {
				err = dbErr
			}
		}
		if i < attempts-1 {
			log.Warn("MySQL not ready, retrying",
				slog.Int("attempt", i+1),
				slog.Int("max_attempts", attempts),
				slog.Any("err", err),
			)
			time.Sleep(opts.RetryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to mysql after %d attempts: %w", attempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	return db, nil
}

func gormLogger(level string) logger.Interface {
	var logLevel logger.LogLevel
	switch level {
	case "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "silent":
		logLevel = logger.Silent
	default:
		logLevel = logger.Error
	}
	return logger.Default.LogMode(logLevel)
}
