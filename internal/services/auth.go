package services

import (
	"context"
	"fmt"
	"strconv"

	"boxful-client/internal/domain"
	"boxful-client/internal/platform/obs"
	"boxful-client/internal/ports"
	"boxful-client/internal/validation"

	"github.com/rs/zerolog/log"
)

// AuthService signs users up, in and out, and owns the local session.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions ports.SessionStore
	onToken  func(string)
}

// AuthOption customizes an AuthService.
type AuthOption func(*AuthService)

// WithTokenSink is called with the token after login and with "" after
// logout, so a transport can attach it to later requests.
func WithTokenSink(f func(string)) AuthOption {
	return func(a *AuthService) { a.onToken = f }
}

func NewAuthService(gateway ports.AuthGateway, sessions ports.SessionStore, opts ...AuthOption) *AuthService {
	a := &AuthService{gateway: gateway, sessions: sessions, onToken: func(string) {}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register validates the form and creates the account. The user is not
// signed in afterwards.
func (a *AuthService) Register(ctx context.Context, r domain.Registration) (_ domain.AuthResponse, err error) {
	defer obs.Time(ctx, "services.Register")(&err)

	if errs := validation.RegistrationSchema(r.Password).Validate(validation.RegistrationValues(r)); len(errs) > 0 {
		return domain.AuthResponse{}, &PreflightError{Message: errs[0].Message, Fields: errs}
	}
	if msg := validation.PreflightRegistration(r); msg != "" {
		return domain.AuthResponse{}, &PreflightError{Message: msg}
	}

	res, err := a.gateway.Register(ctx, r.Request())
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	log.Info().Int("user_id", res.User.ID).Msg("account registered")
	return res, nil
}

// Login authenticates and, when the server returns a token, persists the
// session.
func (a *AuthService) Login(ctx context.Context, creds domain.Credentials) (_ domain.Session, err error) {
	defer obs.Time(ctx, "services.Login")(&err)

	values := map[string]any{"email": creds.Email, "password": creds.Password}
	if errs := validation.LoginSchema().Validate(func(n string) any { return values[n] }); len(errs) > 0 {
		return domain.Session{}, &PreflightError{Message: errs[0].Message, Fields: errs}
	}

	res, err := a.gateway.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if res.Token == "" {
		return domain.Session{}, fmt.Errorf("login: %w", ErrNoToken)
	}

	user := res.User
	sess := domain.Session{
		Token:  res.Token,
		User:   &user,
		UserID: strconv.Itoa(user.ID),
	}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	a.onToken(sess.Token)

	log.Info().Str("user_id", sess.UserID).Msg("signed in")
	return sess, nil
}

// Logout clears the stored session.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.onToken("")
	return nil
}

// Current returns the stored session and hands its token to the sink.
func (a *AuthService) Current(ctx context.Context) (domain.Session, error) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("current session: %w", err)
	}
	if sess.Authenticated() {
		a.onToken(sess.Token)
	}
	return sess, nil
}
