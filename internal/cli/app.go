package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boxful-client/internal/adapters/boxfulapi"
	"boxful-client/internal/adapters/storage"
	"boxful-client/internal/config"
	"boxful-client/internal/platform/db"
	"boxful-client/internal/ports"
	"boxful-client/internal/services"
)

// app is the composition root of one command run: the API client, the
// session store and the services built on them.
type app struct {
	db       *sql.DB
	client   *boxfulapi.Client
	sessions ports.SessionStore
	auth     *services.AuthService
	orders   *services.OrderSubmitter
	history  *services.HistoryView
}

func newApp(ctx context.Context, c config.Config) (*app, error) {
	client, err := boxfulapi.NewClient(c.API.BaseURL, c.API.Timeout)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	conn, sessions, err := openSessionStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	a := &app{
		db:       conn,
		client:   client,
		sessions: sessions,
		auth:     services.NewAuthService(client, sessions, services.WithTokenSink(client.SetToken)),
		orders:   services.NewOrderSubmitter(client, sessions),
		history:  services.NewHistoryView(client, sessions),
	}

	if _, err := a.auth.Current(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("new app: %w", err)
	}
	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// openSessionStore opens the configured session database and makes sure
// its table exists.
func openSessionStore(ctx context.Context, c config.Config) (*sql.DB, ports.SessionStore, error) {
	var (
		conn  *sql.DB
		store ports.SessionStore
		err   error
	)

	switch c.Session.Driver {
	case "sqlite":
		conn, err = db.OpenSqlite(c.Session.DSN)
		if err != nil {
			return nil, nil, err
		}
		store = storage.NewSqliteSessionStore(conn)
	case "postgres":
		conn, err = db.Open(c.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		store = storage.NewSQLSessionStore(conn)
	default:
		return nil, nil, errors.New("open session store: unknown driver " + c.Session.Driver)
	}

	if err := storage.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}
	return conn, store, nil
}

// withApp builds the app for the duration of fn.
func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
