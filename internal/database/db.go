package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// Supported driver names.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// sqliteUnicode is the go-sqlite3 driver with LOWER replaced by a Unicode
// aware version.  The built-in one only folds ASCII, so name searches
// would miss "École" for the term "école".
const sqliteUnicode = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicode, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

// Options selects the driver and carries its connection parameters.  The
// MySQL fields are ignored for SQLite and vice versa.
type Options struct {
	Driver     string
	User       string
	Pass       string
	Host       string
	Port       string
	Name       string
	SQLitePath string
}

// Open connects to the configured database and verifies the connection.
func Open(o Options) (*sql.DB, error) {
	switch o.Driver {
	case DriverMySQL, "":
		return OpenMySQL(o.User, o.Pass, o.Host, o.Port, o.Name)
	case DriverSQLite:
		return OpenSQLite(o.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", o.Driver)
	}
}

// OpenMySQL connects to MySQL and verifies the connection.
func OpenMySQL(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps show times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open(DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := ping(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens a SQLite database file with foreign keys enforced.  The
// special path ":memory:" gives a private in-memory database.
//
// SQLite allows a single writer, so the pool is limited to one connection.
// This also keeps an in-memory database alive across calls, since every new
// connection to ":memory:" would otherwise see an empty database.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = "fyyur.db"
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_loc=UTC", path)
	db, err := sql.Open(sqliteUnicode, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := ping(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
