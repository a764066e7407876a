package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stis-apps/titiktemu/internal/dbx"
	"github.com/stis-apps/titiktemu/internal/logging"
)

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db    *sql.DB
	log   logging.Logger
	watch *watchHub
}

// NewSQLiteStore wraps an already-opened database whose schema is in
// place. Use Open to also create the database and run migrations.
func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log, watch: newWatchHub()}
}

// GetToken returns the stored bearer token or "" when none is stored or
// the read fails. Read failures are logged, never surfaced: an absent
// token simply means the next request goes out unauthenticated.
func (s *SQLiteStore) GetToken(ctx context.Context) string {
	v, err := s.get(ctx, s.db, KeyToken)
	if err != nil {
		s.log.Warn(ctx, "session token read failed", "error", err)
		return ""
	}
	return v
}

// SaveToken stores the bearer token and notifies token watchers.
func (s *SQLiteStore) SaveToken(ctx context.Context, token string) error {
	if err := s.set(ctx, s.db, KeyToken, token); err != nil {
		return err
	}
	s.watch.publish(KeyToken, token)
	return nil
}

// SaveUserData merges the given fields into the cached profile snapshot.
// Nil fields are untouched; the token is never touched here.
func (s *SQLiteStore) SaveUserData(ctx context.Context, data UserData) error {
	fields := map[string]*string{
		KeyUsername:   data.Username,
		KeyEmail:      data.Email,
		KeyFullName:   data.FullName,
		KeyRole:       data.Role,
		KeyExternalID: data.ExternalID,
		KeyPhone:      data.Phone,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range fields {
			if value == nil {
				continue
			}
			if err := s.set(ctx, tx, key, *value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if data.Username != nil {
		s.watch.publish(KeyUsername, *data.Username)
	}
	return nil
}

// UserData returns the cached profile snapshot. Missing keys read as "".
func (s *SQLiteStore) UserData(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	for key, dst := range map[string]*string{
		KeyUsername:   &snap.Username,
		KeyEmail:      &snap.Email,
		KeyFullName:   &snap.FullName,
		KeyRole:       &snap.Role,
		KeyExternalID: &snap.ExternalID,
		KeyPhone:      &snap.Phone,
	} {
		v, err := s.get(ctx, s.db, key)
		if err != nil {
			return Snapshot{}, err
		}
		*dst = v
	}
	return snap, nil
}

// ClearAll wipes every stored key in one statement. SQLite runs the
// delete atomically, so readers never observe a partially cleared session.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.watch.publish(KeyToken, "")
	s.watch.publish(KeyUsername, "")
	return nil
}

// TokenUpdates streams the token value to reactive consumers.
func (s *SQLiteStore) TokenUpdates() (<-chan string, func()) {
	return s.watch.subscribe(KeyToken)
}

// UsernameUpdates streams the cached username to reactive consumers.
func (s *SQLiteStore) UsernameUpdates() (<-chan string, func()) {
	return s.watch.subscribe(KeyUsername)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Prime pushes the currently stored token and username into the watch
// hub so subscribers created before any write still see stored state.
func (s *SQLiteStore) Prime(ctx context.Context) {
	s.watch.publish(KeyToken, s.GetToken(ctx))
	if v, err := s.get(ctx, s.db, KeyUsername); err == nil {
		s.watch.publish(KeyUsername, v)
	}
}

func (s *SQLiteStore) get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
