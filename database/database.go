package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const (
	dialect   = "sqlite3"
	memoryDSN = ":memory:"
)

type Config struct {
	URL         string
	MaxIdle     uint
	MaxOpenConn uint
	MaxLifeTime string
	LogEnable   int
}

// Logger receives SQL statement logs when LogEnable is set.
type Logger interface {
	Println(v ...interface{})
}

// ResolveURL splits a store connection string into the DSN handed to the
// driver and the file backing it. The file is empty for in-memory stores.
//
//	sqlite:///my_db.db      -> my_db.db
//	sqlite:////tmp/my_db.db -> /tmp/my_db.db
//	sqlite://               -> :memory:
//	file:my_db.db?cache=shared
func ResolveURL(url string) (dsn string, file string) {
	dsn = url
	for _, prefix := range []string{"sqlite:///", "sqlite3:///", "sqlite://", "sqlite3://"} {
		if strings.HasPrefix(url, prefix) {
			dsn = strings.TrimPrefix(url, prefix)
			if dsn == "" {
				dsn = memoryDSN
			}
			break
		}
	}

	file = dsn
	if strings.HasPrefix(file, "file:") {
		file = strings.TrimPrefix(file, "file:")
		if i := strings.Index(file, "?"); i >= 0 {
			if strings.Contains(file[i:], "mode=memory") {
				return dsn, ""
			}
			file = file[:i]
		}
	}
	if file == "" || file == memoryDSN {
		return dsn, ""
	}
	return dsn, file
}

// Open connects to the store and applies the pool settings.
func Open(config Config, logger Logger) (*gorm.DB, error) {
	dsn, _ := ResolveURL(config.URL)
	if dsn == "" {
		return nil, fmt.Errorf("database: empty connection string")
	}

	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", dsn, err)
	}

	if config.MaxIdle > 0 {
		db.DB().SetMaxIdleConns(int(config.MaxIdle))
	}
	if config.MaxOpenConn > 0 {
		db.DB().SetMaxOpenConns(int(config.MaxOpenConn))
	}
	if config.MaxLifeTime != "" {
		lifeTime, err := time.ParseDuration(config.MaxLifeTime)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("database: max_life_time %q: %w", config.MaxLifeTime, err)
		}
		db.DB().SetConnMaxLifetime(lifeTime)
	}

	if logger != nil {
		db.SetLogger(gorm.Logger{LogWriter: logger})
	}
	db.LogMode(config.LogEnable == 1)

	return db, nil
}

// Ping reports whether the store still answers.
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database: not initialized")
	}
	return db.DB().Ping()
}
