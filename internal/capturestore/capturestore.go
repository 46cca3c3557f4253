// Package capturestore persists dissected Modbus messages to SQLite
// for offline audit. It is an audit log of parsed frames, never a
// register database: nothing here models live coil/register state.
package capturestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	modbus "github.com/modbus-tools/dissector"
)

// ErrNotOpen is returned by Record and Flagged when called after Close.
var ErrNotOpen = errors.New("capturestore: store is not open")

const schema = `
CREATE TABLE IF NOT EXISTS captures (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	captured_at    TEXT    NOT NULL,
	direction      TEXT    NOT NULL,
	remote_addr    TEXT    NOT NULL,
	transaction_id INTEGER NOT NULL,
	unit_id        INTEGER NOT NULL,
	function_raw   INTEGER NOT NULL,
	function_name  TEXT    NOT NULL,
	access_type    INTEGER NOT NULL,
	category       INTEGER NOT NULL,
	flags          INTEGER NOT NULL,
	raw_pdu        BLOB    NOT NULL
);
`

// Record is one row of a prior capture.
type Record struct {
	ID            int64
	CapturedAt    time.Time
	Direction     string
	RemoteAddr    string
	TransactionID uint16
	UnitID        uint8
	FunctionRaw   byte
	FunctionName  string
	AccessType    modbus.AccessType
	Category      modbus.CodeCategory
	Flags         modbus.ErrorFlags
	RawPDU        []byte
}

// Store is a handle onto a capture database. Its methods take an
// internal mutex, so calls on one Store run one at a time, mirroring
// the teacher's logger mutex convention.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates (or reuses) a SQLite database at path and ensures the
// captures table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("capturestore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("capturestore: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle. Later Record and
// Flagged calls return ErrNotOpen; a second Close returns nil.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record inserts one row describing a dissected message.
func (s *Store) Record(direction, remoteAddr string, msg *modbus.Message, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrNotOpen
	}

	_, err := s.db.Exec(
		`INSERT INTO captures
			(captured_at, direction, remote_addr, transaction_id, unit_id,
			 function_raw, function_name, access_type, category, flags, raw_pdu)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		timeNowRFC3339(), direction, remoteAddr,
		msg.TransactionID, msg.UnitID,
		msg.Function.Raw, msg.Function.String(),
		uint8(msg.AccessType), uint8(msg.Category), uint8(msg.Flags),
		raw,
	)
	if err != nil {
		return fmt.Errorf("capturestore: insert: %w", err)
	}
	return nil
}

// Flagged returns every capture whose ErrorFlags is nonzero, most
// recent first.
func (s *Store) Flagged(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, captured_at, direction, remote_addr, transaction_id, unit_id,
		       function_raw, function_name, access_type, category, flags, raw_pdu
		FROM captures
		WHERE flags != 0
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("capturestore: query flagged: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var capturedAt string
		if err := rows.Scan(
			&rec.ID, &capturedAt, &rec.Direction, &rec.RemoteAddr,
			&rec.TransactionID, &rec.UnitID, &rec.FunctionRaw, &rec.FunctionName,
			&rec.AccessType, &rec.Category, &rec.Flags, &rec.RawPDU,
		); err != nil {
			return nil, fmt.Errorf("capturestore: scan row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, capturedAt); err == nil {
			rec.CapturedAt = t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("capturestore: iterate rows: %w", err)
	}
	return out, nil
}

func timeNowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
