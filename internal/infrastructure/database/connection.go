package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cxtrack/internal/shared/config"
	"cxtrack/internal/shared/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the MySQL connection and configures the pool. Entitlement reads
// dominate this service's traffic, so statements are prepared and cached and
// the version/schema probe queries are skipped.
func Init(cfg *config.DatabaseConfig) error {
	dsn := cfg.GetDSN() + "&collation=utf8mb4_general_ci"

	gormLog := gormlogger.New(
		&queryLogger{log: logger.NewComponentLogger("database")},
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:      gormLog,
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = conn
	dbMu.Unlock()

	logger.Info("database connection established",
		"database", cfg.Database,
		"max_open_conns", cfg.MaxOpenConns)

	return nil
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	logger.Info("database connection closed")
	return nil
}

// queryLogger adapts gorm's printf-style logging onto the structured logger,
// dropping the startup probe queries that SkipInitializeWithVersion does not
// cover and classifying the rest by severity.
type queryLogger struct {
	log logger.Interface
}

func (l *queryLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lowered := strings.ToLower(msg)

	if strings.Contains(lowered, "information_schema.schemata") ||
		strings.Contains(lowered, "select version()") {
		return
	}

	switch {
	case strings.Contains(lowered, "[error]") || strings.Contains(msg, "ERROR"):
		l.log.Errorw("database error", "details", msg)
	case strings.Contains(lowered, "slow sql"):
		l.log.Warnw("slow query", "details", msg)
	default:
		l.log.Debugw("database query", "details", msg)
	}
}
