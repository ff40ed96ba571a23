package ports

import (
	"context"

	"boxful-client/internal/domain"
)

// Port: local persistence of the signed-in session.
// The store holds at most one session.
type SessionStore interface {
	// Replace the stored token, user and user id.
	Save(ctx context.Context, s domain.Session) error
	// Return the stored session, or the zero Session when signed out.
	Load(ctx context.Context) (domain.Session, error)
	// Remove all three entries.
	Clear(ctx context.Context) error
}
