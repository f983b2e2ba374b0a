package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
    name TEXT PRIMARY KEY,
    body TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// OpenDB opens the SQLite database at path and creates its schema.
func OpenDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create schema in %q: %w", path, err)
	}
	return db, nil
}

type document struct {
	Name string `db:"name"`
	Body string `db:"body"`
}

// SQLite persists a value as the JSON document name of a database.
type SQLite[T any] struct {
	db   *sqlx.DB
	name string
}

// NewSQLite returns the repository of the document name in db.
func NewSQLite[T any](db *sqlx.DB, name string) *SQLite[T] {
	return &SQLite[T]{db: db, name: name}
}

// Load decodes the document. A missing document is reported with an error
// wrapping fs.ErrNotExist.
func (s *SQLite[T]) Load() (T, error) {
	var v T
	var doc document
	err := s.db.Get(&doc, `SELECT name, body FROM documents WHERE name = ?`, s.name)
	if errors.Is(err, sql.ErrNoRows) {
		return v, fmt.Errorf("document %q: %w", s.name, fs.ErrNotExist)
	}
	if err != nil {
		return v, fmt.Errorf("could not read document %q: %w", s.name, err)
	}
	if err := json.Unmarshal([]byte(doc.Body), &v); err != nil {
		return v, fmt.Errorf("could not decode document %q: %w", s.name, err)
	}
	return v, nil
}

// Save replaces the document with v.
func (s *SQLite[T]) Save(v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode document %q: %w", s.name, err)
	}
	_, err = s.db.NamedExec(`INSERT INTO documents (name, body) VALUES (:name, :body)
        ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		document{Name: s.name, Body: string(data)})
	if err != nil {
		return fmt.Errorf("could not write document %q: %w", s.name, err)
	}
	return nil
}
