package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boxful-client/internal/domain"
	"boxful-client/internal/platform/obs"
	"boxful-client/internal/ports"
)

var _ ports.SessionStore = (*SQLSessionStore)(nil)

// SQLSessionStore keeps the signed-in session in Postgres.
type SQLSessionStore struct {
	DB *sql.DB
}

func NewSQLSessionStore(db *sql.DB) *SQLSessionStore {
	return &SQLSessionStore{DB: db}
}

// Save replaces all three entries. Entries that are empty in s are removed.
func (s *SQLSessionStore) Save(ctx context.Context, sess domain.Session) (err error) {
	defer obs.Time(ctx, "session.sql.Save")(&err)

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

	if _, err := tx.ExecContext(ctx, `DELETE FROM auth_session WHERE key = ANY($1::text[]);`, sessionKeys); err != nil {
		return fmt.Errorf("save session: delete session keys: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO auth_session (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value;
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
func (s *SQLSessionStore) Load(ctx context.Context) (_ domain.Session, err error) {
	defer obs.Time(ctx, "session.sql.Load")(&err)

	if s.DB == nil {
		return domain.Session{}, errors.New("session store: db is nil")
	}

	q := `
	SELECT key, value
	FROM auth_session
	WHERE key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, sessionKeys)
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
func (s *SQLSessionStore) Clear(ctx context.Context) (err error) {
	defer obs.Time(ctx, "session.sql.Clear")(&err)

	if s.DB == nil {
		return errors.New("session store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM auth_session WHERE key = ANY($1::text[]);`, sessionKeys); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
