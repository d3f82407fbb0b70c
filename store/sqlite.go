package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS prefs (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLite is the file-backed Store.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLite opens (creating if needed) the preference database at path.
func OpenSQLite(path string, log zerolog.Logger) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA busy_timeout = 2000")
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store migrate: %w", err)
	}
	return &SQLite{db: db, log: log}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) get(key string) (string, bool) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("pref read failed, using default")
		return "", false
	}
	return v, true
}

func (s *SQLite) set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO prefs(key, value) VALUES(?,?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("pref write failed, ignoring")
	}
}

func (s *SQLite) Name() (string, bool) {
	v, ok := s.get(keyName)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (s *SQLite) SetName(name string) {
	s.set(keyName, name)
}

func (s *SQLite) EffectPreference() bool {
	v, ok := s.get(keyEffect)
	if !ok {
		return true
	}
	confetti, err := strconv.ParseBool(v)
	if err != nil {
		s.log.Warn().Str("value", v).Msg("corrupt effect preference, using default")
		return true
	}
	return confetti
}

func (s *SQLite) SetEffectPreference(confetti bool) {
	s.set(keyEffect, strconv.FormatBool(confetti))
}

func (s *SQLite) VisitCount() int {
	v, ok := s.get(keyVisitCount)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		s.log.Warn().Str("value", v).Msg("corrupt visit count, using default")
		return 0
	}
	return n
}

func (s *SQLite) IncrementVisits() int {
	n := s.VisitCount() + 1
	s.set(keyVisitCount, strconv.Itoa(n))
	return n
}

func (s *SQLite) LastVisit() (time.Time, bool) {
	v, ok := s.get(keyLastVisit)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		s.log.Warn().Str("value", v).Msg("corrupt last-visit timestamp, using default")
		return time.Time{}, false
	}
	return t, true
}

func (s *SQLite) SetLastVisit(t time.Time) {
	s.set(keyLastVisit, t.Format(time.RFC3339))
}
