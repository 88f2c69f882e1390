// Package database provides support for opening the local storefront database.
package database

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Config is the required properties to use the database.
type Config struct {
	// Path is the sqlite file location. Empty opens an in-memory database.
	Path string
}

// Open knows how to open a database connection based on the configuration.
func Open(cfg Config) (*sqlx.DB, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	return sqlx.Connect("sqlite", path)
}
