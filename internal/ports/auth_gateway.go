package ports

import (
	"context"

	"boxful-client/internal/domain"
)

// Port: the remote account service.
type AuthGateway interface {
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResponse, error)
}
