package sqldb

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPgx    = "pgx"
	DriverPQ     = "postgres"
	DriverSQLite = "sqlite"
)

const defaultSQLitePath = "/tmp/test.db"

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// ResolveDSN picks the database/sql driver for a DATABASE_URL value and
// returns the DSN that driver expects. An empty URL falls back to a local
// SQLite file. driver overrides the Postgres driver choice.
func ResolveDSN(rawURL, driver string) (string, string, error) {
	url := strings.TrimSpace(rawURL)
	driver = strings.ToLower(strings.TrimSpace(driver))

	switch {
	case url == "":
		return DriverSQLite, sqliteDSN(defaultSQLitePath), nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqldb: empty sqlite path in %q", rawURL)
		}
		return DriverSQLite, sqliteDSN(path), nil
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return DriverSQLite, sqliteDSN(url), nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		if strings.HasPrefix(url, "postgres://") {
			url = "postgresql://" + strings.TrimPrefix(url, "postgres://")
		}
		switch driver {
		case "", DriverPgx:
			return DriverPgx, url, nil
		case DriverPQ, "pq":
			return DriverPQ, url, nil
		default:
			return "", "", fmt.Errorf("sqldb: driver %q cannot open a postgres url", driver)
		}
	default:
		return "", "", fmt.Errorf("sqldb: unsupported database url %q", rawURL)
	}
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func New(rawURL, driver string) (*sqlx.DB, error) {
	driverName, dsn, err := ResolveDSN(rawURL, driver)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driverName, err)
	}
	if driverName == DriverSQLite {
		// Single connection: SQLite allows one writer, and :memory: databases
		// are private to their connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}
