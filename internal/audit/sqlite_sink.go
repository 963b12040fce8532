package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/events"
)

const schemaVersion = 1

// SQLiteSink stores audit entries in a SQLite database, for deployments
// that want queryable history instead of a flat file.
type SQLiteSink struct {
	db     *sql.DB
	logger *events.Logger
}

// NewSQLiteSink opens (or creates) the audit database.
func NewSQLiteSink(dbPath string, logger *events.Logger) (*SQLiteSink, error) {
	if logger == nil {
		logger = events.Discard()
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open audit database: %w", err)
	}

	sink := &SQLiteSink{
		db:     db,
		logger: logger.WithField("component", "audit_sqlite"),
	}

	if err := sink.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize audit database: %w", err)
	}

	return sink, nil
}

func (s *SQLiteSink) initialize() error {
	schema := `
    CREATE TABLE IF NOT EXISTS audit_log (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        recorded_at TIMESTAMP NOT NULL,
        op TEXT NOT NULL,
        path TEXT,
        detail TEXT
    );

    CREATE INDEX IF NOT EXISTS idx_audit_log_op ON audit_log(op);

    CREATE TABLE IF NOT EXISTS schema_info (
        version INTEGER PRIMARY KEY
    );

    INSERT OR IGNORE INTO schema_info (version) VALUES (?);
    `

	if _, err := s.db.Exec(schema, schemaVersion); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record inserts a sanitized entry.
func (s *SQLiteSink) Record(entry Entry) error {
	entry = sanitized(entry)

	var detail sql.NullString
	if len(entry.Detail) > 0 {
		data, err := json.Marshal(entry.Detail)
		if err != nil {
			return fmt.Errorf("marshal audit detail: %w", err)
		}
		detail = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(`
        INSERT INTO audit_log (recorded_at, op, path, detail)
        VALUES (?, ?, ?, ?)
    `, entry.Time.Format(time.RFC3339Nano), entry.Op, entry.Path, detail)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Entries returns the most recent n entries, newest first.
func (s *SQLiteSink) Entries(n int) ([]Entry, error) {
	rows, err := s.db.Query(`
        SELECT recorded_at, op, path, detail
        FROM audit_log
        ORDER BY id DESC
        LIMIT ?
    `, n)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			recordedAt string
			entry      Entry
			path       sql.NullString
			detail     sql.NullString
		)
		if err := rows.Scan(&recordedAt, &entry.Op, &path, &detail); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			entry.Time = t
		}
		entry.Path = path.String
		if detail.Valid {
			if err := json.Unmarshal([]byte(detail.String), &entry.Detail); err != nil {
				return nil, fmt.Errorf("decode audit detail: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
