package journal

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

type SQLiteJournal struct {
	db         *sql.DB
	writeMutex *sync.Mutex
}

// NewSQLiteJournal opens a journal with the given filename as the db.
// If file name is empty, a new in-memory db is opened.
func NewSQLiteJournal(filename string) (SQLiteJournal, error) {
	if filename == "" {
		filename = "file::memory:?cache=shared"
	}
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return SQLiteJournal{}, err
	}
	statements := []string{
		`CREATE TABLE IF NOT EXISTS journal (
			key TEXT PRIMARY KEY,
			requested_at INTEGER,
			responded_at INTEGER,
			bytes BLOB
		)`,
		"CREATE INDEX IF NOT EXISTS requested_at_idx ON journal (requested_at)",
		"PRAGMA journal_mode=WAL",
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return SQLiteJournal{}, err
		}
	}
	return SQLiteJournal{
		db:         db,
		writeMutex: &sync.Mutex{},
	}, nil
}

func (s SQLiteJournal) Put(e Entry) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO journal
		(key, requested_at, responded_at, bytes) VALUES (?, ?, ?, ?)`,
		e.Key, e.RequestedAt.UnixNano(), e.RespondedAt.UnixNano(), e.Bytes)
	return err
}

func (s SQLiteJournal) All(prefix string) ([]Entry, error) {
	entries := make([]Entry, 0)
	rows, err := s.db.Query(`SELECT
		key, requested_at, responded_at, bytes
		FROM journal WHERE substr(key, 1, length(?)) = ? ORDER BY requested_at, key`, prefix, prefix)
	if err != nil {
		return entries, err
	}
	defer rows.Close()
	for rows.Next() {
		var entry Entry
		var req, res int64
		if err := rows.Scan(&entry.Key, &req, &res, &entry.Bytes); err != nil {
			return entries, err
		}
		entry.RequestedAt = time.Unix(0, req)
		entry.RespondedAt = time.Unix(0, res)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s SQLiteJournal) Close() error {
	return s.db.Close()
}
