package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Keys of the three session entries.
const (
	TokenKey  = "auth_token"
	UserKey   = "auth_user"
	UserIDKey = "auth_user_id"
)

var sessionKeys = []string{TokenKey, UserKey, UserIDKey}

// InitSchema creates the session table. The DDL is valid for both SQLite
// and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSessionQuery := `
	CREATE TABLE IF NOT EXISTS auth_session (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	statements := []string{
		createSessionQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
