package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqliteDriverName is go-sqlite3 with lower() replaced by a Unicode-aware
// version. The built-in one only folds ASCII, so "Ä" never matched "ä".
const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

// unicodeLower mirrors SQLite's lower(): text is folded, NULL and numbers pass through.
func unicodeLower(v interface{}) interface{} {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		// go-sqlite3 hands NULL to generic arguments as a nil slice.
		if s == nil {
			return nil
		}
		return strings.ToLower(string(s))
	default:
		return v
	}
}

// Options configures Open.
type Options struct {
	Driver   string
	DSN      string
	LogLevel string // silent, error, warn, info
}

// Open connects to the catalog database and configures the connection pool.
// It returns an error instead of exiting so callers decide how to fail.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	level, err := ParseLogLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: get sql.DB: %w", err)
	}
	if opts.Driver == DriverSQLite {
		// SQLite allows one writer; a single connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			return nil, fmt.Errorf("database: sqlite requires a file path")
		}
		return sqlite.New(sqlite.Config{
			DriverName: sqliteDriverName,
			DSN:        sqliteDSN(dsn),
		}), nil
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("database: postgres requires DATABASE_URL")
		}
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	default:
		return nil, fmt.Errorf("database: unsupported driver %q (supported: sqlite, postgres)", driver)
	}
}

// sqliteDSN turns on foreign keys and a busy timeout unless the caller already set options.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=5000&_foreign_keys=on"
}

// ParseLogLevel maps a config string to a gorm log level. Empty means warn.
func ParseLogLevel(s string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "", "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return 0, fmt.Errorf("database: unknown log level %q", s)
	}
}
