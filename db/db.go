package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	DefaultMigrationDir = "file://db/migration"
)

const (
	maxOpenConns = 10
	maxIdleConns = 5
	connMaxLife  = time.Minute * 15
)

// ParseDatabaseUrl maps a DATABASE_URL onto a database/sql driver name
// and data source name. postgres:// and postgresql:// URLs go to lib/pq
// as they are; sqlite://path opens the sqlite file at path.
func ParseDatabaseUrl(dbUrl string) (driverName, dsn string, err error) {
	switch {
	case strings.HasPrefix(dbUrl, "postgres://"), strings.HasPrefix(dbUrl, "postgresql://"):
		return DriverPostgres, dbUrl, nil

	case strings.HasPrefix(dbUrl, "sqlite://"):
		path := strings.TrimPrefix(dbUrl, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite database url has no path: %s", dbUrl)
		}
		return DriverSqlite, path, nil

	default:
		return "", "", fmt.Errorf("unsupported database url scheme: %s", dbUrl)
	}
}

func MustMigrate(db *sql.DB, driverName, migrationDir string) {
	var (
		driver database.Driver
		err    error
	)
	switch driverName {
	case DriverPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSqlite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		err = fmt.Errorf("no migration driver for %s", driverName)
	}
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, driverName, driver)
	if err != nil {
		panic(err)
	}
	m.Log = migrateLogger{}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		panic(err)
	}
	if dirty {
		panic("database is dirty")
	}
	log.Println("migration version:", version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return
		}
		panic(err)
	}
	log.Println("migration successful...")
}

func MustConnectToDb(dbUrl string) (*sql.DB, string) {
	return MustConnectToDbWithMigrations(dbUrl, DefaultMigrationDir)
}

// MustConnectToDbWithMigrations is MustConnectToDb with the migration
// source url given, for callers not running from the module root.
func MustConnectToDbWithMigrations(dbUrl, migrationDir string) (*sql.DB, string) {
	driverName, dsn, err := ParseDatabaseUrl(dbUrl)
	if err != nil {
		panic(err)
	}

	// Open may just validate its arguments without creating a connection to the database
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	if driverName == DriverSqlite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
		db.SetConnMaxLifetime(connMaxLife)
	}

	MustMigrate(db, driverName, migrationDir)
	return db, driverName
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	log.Printf("[migrate] "+format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
