package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"boxful-client/internal/domain"
	"boxful-client/internal/platform/obs"
	"boxful-client/internal/ports"
)

var _ ports.SessionStore = (*SqliteSessionStore)(nil)

// SqliteSessionStore keeps the signed-in session in a local SQLite file.
type SqliteSessionStore struct {
	DB *sql.DB
}

func NewSqliteSessionStore(db *sql.DB) *SqliteSessionStore {
	return &SqliteSessionStore{DB: db}
}

// Save replaces all three entries. Entries that are empty in s are removed.
func (s *SqliteSessionStore) Save(ctx context.Context, sess domain.Session) (err error) {
	defer obs.Time(ctx, "session.sqlite.Save")(&err)

	if s.DB == nil {
		return errors.New("session store: db is nil")
	}

	kv, err := encodeSession(sess)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save session: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteKeysSqlite(ctx, tx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO auth_session (
		key,
		value
	)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save session: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, k := range sessionKeys {
		v, ok := kv[k]
		if !ok {
			continue
		}
		if _, err := stmt.ExecContext(ctx, k, v); err != nil {
			return fmt.Errorf("save session key=%q: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save session commit: %w", err)
	}

	return nil
}

// Load returns the stored session, or the zero Session.
func (s *SqliteSessionStore) Load(ctx context.Context) (_ domain.Session, err error) {
	defer obs.Time(ctx, "session.sqlite.Load")(&err)

	if s.DB == nil {
		return domain.Session{}, errors.New("session store: db is nil")
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT key, value
	FROM auth_session
	WHERE key IN (%s);
	`, placeholders(len(sessionKeys)))

	rows, err := s.DB.QueryContext(ctx, q, keyArgs()...)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: query auth_session table: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]string, len(sessionKeys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return domain.Session{}, fmt.Errorf("load session: scan rows: %w", err)
		}
		kv[k] = v
	}
	if err := rows.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("load session: row iteration: %w", err)
	}

	return decodeSession(kv)
}

// Clear removes every session entry.
func (s *SqliteSessionStore) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "session.sqlite.Clear")(&err)

	if s.DB == nil {
		return errors.New("session store: db is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear session: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteKeysSqlite(ctx, tx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clear session commit: %w", err)
	}
	return nil
}

func deleteKeysSqlite(ctx context.Context, tx *sql.Tx) error {
	q := fmt.Sprintf(`DELETE FROM auth_session WHERE key IN (%s);`, placeholders(len(sessionKeys)))
	if _, err := tx.ExecContext(ctx, q, keyArgs()...); err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = "?"
	}
	return strings.Join(ph, ",")
}

func keyArgs() []any {
	args := make([]any, 0, len(sessionKeys))
	for _, k := range sessionKeys {
		args = append(args, k)
	}
	return args
}
