// Package journal provides a SQLite-backed audit log of change events.
//
// The journal is write-only from the monitor's point of view: it is
// never consulted to seed the detection baseline, which always starts
// uninitialized after a restart. The management API reads it back for
// the /events endpoint.
package journal

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/rjongens/dnswatch/internal/monitor"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the SQLite connection holding the change-event journal.
type DB struct {
	conn *sql.DB
}

// Entry is one journaled change event.
type Entry struct {
	ID         int64                 `json:"id"`
	DetectedAt time.Time             `json:"detected_at"`
	Subdomain  string                `json:"subdomain"`
	FQDN       string                `json:"fqdn"`
	Old        []monitor.RecordEntry `json:"old_records"`
	New        []monitor.RecordEntry `json:"new_records"`
}

// Open opens or creates the journal database at the given path and
// applies pending schema migrations.
func Open(path string) (*DB, error) {
	// WAL keeps the API's reads from blocking the monitor's writes.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	db := &DB{conn: conn}
	if err := db.migrateSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate journal schema: %w", err)
	}
	return db, nil
}

func (db *DB) migrateSchema() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Health checks database connectivity.
func (db *DB) Health() error {
	return db.conn.Ping()
}

// Record appends one change event. Satisfies monitor.Journal.
func (db *DB) Record(ctx context.Context, domain string, ev monitor.ChangeEvent) error {
	oldJSON, err := json.Marshal(ev.Old)
	if err != nil {
		return err
	}
	newJSON, err := json.Marshal(ev.New)
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO change_events (detected_at, subdomain, fqdn, old_records, new_records)
		VALUES (?, ?, ?, ?, ?)
	`, time.Now().UTC(), ev.Name, ev.Name+"."+domain, string(oldJSON), string(newJSON))
	if err != nil {
		return fmt.Errorf("insert change event: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, detected_at, subdomain, fqdn, old_records, new_records
		FROM change_events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query change events: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e                Entry
			oldJSON, newJSON string
		)
		if err := rows.Scan(&e.ID, &e.DetectedAt, &e.Subdomain, &e.FQDN, &oldJSON, &newJSON); err != nil {
			return nil, fmt.Errorf("scan change event: %w", err)
		}
		if err := json.Unmarshal([]byte(oldJSON), &e.Old); err != nil {
			return nil, fmt.Errorf("decode old records for event %d: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(newJSON), &e.New); err != nil {
			return nil, fmt.Errorf("decode new records for event %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
