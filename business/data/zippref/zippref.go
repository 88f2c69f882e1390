// Package zippref persists the shopper's remembered delivery ZIP code so a
// returning visitor sees an estimate without retyping it. It is a single
// key-value row in the storefront's local database.
package zippref

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//zipPrefKey is the fixed identifier the remembered ZIP is stored under
const zipPrefKey = "deliveryZipCode"

const createPreferencesDDL = `
create table if not exists preferences (
	key text primary key,
	value text not null
)`

// Store reads and writes the remembered ZIP preference.
type Store struct {
	db *sqlx.DB
}

// MakeStore builds a Store, creating the preferences table when absent.
func MakeStore(db *sqlx.DB) (*Store, error) {
	if _, err := db.Exec(createPreferencesDDL); err != nil {
		return nil, fmt.Errorf("creating preferences table: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the remembered ZIP, or an empty string when none has been
// stored yet. An unset preference is not an error.
func (s *Store) Get() (string, error) {
	var zip string
	err := s.db.Get(&zip, "select value from preferences where key = ?", zipPrefKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading zip preference: %w", err)
	}
	return zip, nil
}

// Put stores the remembered ZIP, replacing any previous value.
func (s *Store) Put(zip string) error {
	_, err := s.db.Exec(
		"insert into preferences (key, value) values (?, ?) on conflict (key) do update set value = excluded.value",
		zipPrefKey, zip)
	if err != nil {
		return fmt.Errorf("storing zip preference: %w", err)
	}
	return nil
}

// Clear removes the remembered ZIP. Clearing an unset preference is a no-op.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("delete from preferences where key = ?", zipPrefKey); err != nil {
		return fmt.Errorf("clearing zip preference: %w", err)
	}
	return nil
}
