package storage

import (
	"context"
	"database/sql"
	"fmt"

	"networkbook/internal/nb"
	"networkbook/internal/person"
	"networkbook/internal/storage/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage keeps the contact book in a SQLite database. Contacts live
// in the persons table in book order; emails, links and tags live in
// person_items. Save replaces both tables in one transaction.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

var _ nb.Storage = (*SQLiteStorage)(nil)

// NewSQLiteStorage opens the database at path, creating and migrating it
// as needed. path can be ":memory:" for a throwaway database.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	return &SQLiteStorage{db: db, path: path}, nil
}

// OpenConnection opens a SQLite database with foreign keys enabled.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteStorage) CheckMigrations() error {
	return migrations.Status(s.db)
}

// Path returns the database location.
func (s *SQLiteStorage) Path() string {
	return s.path
}

func (s *SQLiteStorage) Load() ([]person.Person, error) {
	ctx := context.Background()

	rows, err := s.db.QueryContext(ctx, `
		SELECT position, name, phone, graduating_year, course, specialisation, priority
		FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	var positions []int64
	stored := map[int64]*jsonPerson{}
	for rows.Next() {
		var (
			pos                          int64
			name, phone                  string
			grad, course, spec, priority sql.NullString
		)
		if err := rows.Scan(&pos, &name, &phone, &grad, &course, &spec, &priority); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		positions = append(positions, pos)
		stored[pos] = &jsonPerson{
			Name:           &name,
			Phone:          &phone,
			GraduatingYear: nullable(grad),
			Course:         nullable(course),
			Specialisation: nullable(spec),
			Priority:       nullable(priority),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading persons: %w", err)
	}

	if err := s.loadItems(ctx, stored); err != nil {
		return nil, err
	}

	persons := make([]person.Person, 0, len(positions))
	for _, pos := range positions {
		p, err := stored[pos].toPerson()
		if err != nil {
			return nil, fmt.Errorf("person at position %d: %w", pos, err)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

func (s *SQLiteStorage) loadItems(ctx context.Context, stored map[int64]*jsonPerson) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT person_position, kind, value
		FROM person_items ORDER BY person_position, kind, position`)
	if err != nil {
		return fmt.Errorf("querying person items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pos         int64
			kind, value string
		)
		if err := rows.Scan(&pos, &kind, &value); err != nil {
			return fmt.Errorf("scanning person item: %w", err)
		}
		jp, ok := stored[pos]
		if !ok {
			return fmt.Errorf("item %q belongs to unknown person %d", value, pos)
		}
		prop := jsonProperty{Name: value}
		switch kind {
		case "email":
			jp.Emails = append(jp.Emails, prop)
		case "link":
			jp.Links = append(jp.Links, prop)
		case "tag":
			jp.Tags = append(jp.Tags, prop)
		default:
			return fmt.Errorf("unknown item kind %q", kind)
		}
	}
	return rows.Err()
}

func (s *SQLiteStorage) Save(persons []person.Person) error {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Foreign keys are only enabled on the first pooled connection, so the
	// cascade from persons cannot be relied on.
	if _, err := tx.ExecContext(ctx, "DELETE FROM person_items"); err != nil {
		return fmt.Errorf("clearing person items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM persons"); err != nil {
		return fmt.Errorf("clearing persons: %w", err)
	}

	for i, p := range persons {
		jp := fromPerson(p)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO persons (position, name, phone, graduating_year, course, specialisation, priority)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, *jp.Name, *jp.Phone, jp.GraduatingYear, jp.Course, jp.Specialisation, jp.Priority)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", p.Name(), err)
		}

		items := []struct {
			kind  string
			props []jsonProperty
		}{
			{"email", jp.Emails},
			{"link", jp.Links},
			{"tag", jp.Tags},
		}
		for _, group := range items {
			for j, prop := range group.props {
				_, err := tx.ExecContext(ctx,
					"INSERT INTO person_items (person_position, kind, position, value) VALUES (?, ?, ?, ?)",
					i, group.kind, j, prop.Name)
				if err != nil {
					return fmt.Errorf("inserting %s %q of %s: %w", group.kind, prop.Name, p.Name(), err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
