package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"boxful-client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegistration() domain.Registration {
	return domain.Registration{
		FirstName:       "Ana",
		LastName:        "Pérez",
		Sex:             "F",
		BirthDate:       time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Email:           "ana@boxful.com",
		Phone:           "+503 7123 4567",
		Password:        "secreta123",
		ConfirmPassword: "secreta123",
	}
}

func TestLoginPersistsSessionAndSetsToken(t *testing.T) {
	gw := new(MockAuthGateway)
	sessions := new(MockSessionStore)
	creds := domain.Credentials{Email: "ana@boxful.com", Password: "x"}

	gw.On("Login", mock.Anything, creds).Return(domain.AuthResponse{
		Message: "ok",
		User:    domain.User{ID: 42, FirstName: "Ana"},
		Token:   "jwt-42",
	}, nil)
	sessions.On("Save", mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.Token == "jwt-42" && s.UserID == "42" && s.User != nil && s.User.FirstName == "Ana"
	})).Return(nil)

	var token string
	svc := NewAuthService(gw, sessions, WithTokenSink(func(tok string) { token = tok }))

	sess, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "42", sess.UserID)
	assert.Equal(t, "jwt-42", token)
	assert.Equal(t, "¡Inicio de sesión exitoso!", LoginNotice(nil).Title)

	gw.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLoginWithoutTokenStoresNothing(t *testing.T) {
	gw := new(MockAuthGateway)
	sessions := new(MockSessionStore)
	gw.On("Login", mock.Anything, mock.Anything).Return(domain.AuthResponse{User: domain.User{ID: 1}}, nil)

	_, err := NewAuthService(gw, sessions).Login(context.Background(), domain.Credentials{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, ErrNoToken)
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	n := LoginNotice(err)
	assert.Equal(t, NoticeGeneral, n.Kind)
	assert.Equal(t, "Error al iniciar sesión. Verifica tus credenciales.", n.Message)
}

func TestLoginPreflightSkipsGateway(t *testing.T) {
	gw := new(MockAuthGateway)
	sessions := new(MockSessionStore)

	_, err := NewAuthService(gw, sessions).Login(context.Background(), domain.Credentials{Email: "no-es-correo", Password: ""})
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"email", "password"}, pe.Fields.Fields())

	n := LoginNotice(err)
	assert.Equal(t, NoticeValidation, n.Kind)
	assert.Equal(t, "Ingresa un correo electrónico válido", n.Message)
	gw.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginServerMessageIsShown(t *testing.T) {
	gw := new(MockAuthGateway)
	gw.On("Login", mock.Anything, mock.Anything).
		Return(domain.AuthResponse{}, &userMsgErr{msg: "Credenciales inválidas"})

	_, err := NewAuthService(gw, new(MockSessionStore)).Login(context.Background(), domain.Credentials{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	n := LoginNotice(err)
	assert.Equal(t, NoticeNetwork, n.Kind)
	assert.Equal(t, "Credenciales inválidas", n.Message)
}

func TestRegisterDoesNotSignIn(t *testing.T) {
	gw := new(MockAuthGateway)
	sessions := new(MockSessionStore)
	r := validRegistration()

	gw.On("Register", mock.Anything, r.Request()).Return(domain.AuthResponse{
		Message: "Usuario registrado",
		User:    domain.User{ID: 9, FirstName: "Ana"},
		Token:   "ignored",
	}, nil)

	called := false
	svc := NewAuthService(gw, sessions, WithTokenSink(func(string) { called = true }))
	res, err := svc.Register(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 9, res.User.ID)
	assert.False(t, called)
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Equal(t, "¡Registro exitoso!", RegisterNotice(nil).Title)
	gw.AssertExpectations(t)
}

func TestRegisterPreflight(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Registration)
		want   string
	}{
		{"password mismatch", func(r *domain.Registration) { r.ConfirmPassword = "otra-cosa1" }, "Las contraseñas no coinciden"},
		{"phone without group space", func(r *domain.Registration) { r.Phone = "+503 71234567" }, "El número de teléfono no tiene un formato válido"},
		{"short name", func(r *domain.Registration) { r.FirstName = "A" }, "El nombre debe tener al menos 2 caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(MockAuthGateway)
			r := validRegistration()
			tt.mutate(&r)

			_, err := NewAuthService(gw, new(MockSessionStore)).Register(context.Background(), r)
			var pe *PreflightError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.want, pe.Message)
			assert.Equal(t, tt.want, RegisterNotice(err).Message)
			gw.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterFailureFallback(t *testing.T) {
	gw := new(MockAuthGateway)
	gw.On("Register", mock.Anything, mock.Anything).Return(domain.AuthResponse{}, errors.New("boom"))

	_, err := NewAuthService(gw, new(MockSessionStore)).Register(context.Background(), validRegistration())
	require.Error(t, err)
	assert.Equal(t, "Error al registrar usuario. Inténtalo de nuevo.", RegisterNotice(err).Message)
}

func TestLogoutClearsSessionAndToken(t *testing.T) {
	sessions := new(MockSessionStore)
	sessions.On("Clear", mock.Anything).Return(nil)

	token := "jwt"
	svc := NewAuthService(new(MockAuthGateway), sessions, WithTokenSink(func(tok string) { token = tok }))
	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, token)
	sessions.AssertExpectations(t)
}

func TestCurrentRestoresToken(t *testing.T) {
	sessions := new(MockSessionStore)
	sessions.On("Load", mock.Anything).Return(signedIn(), nil)

	var token string
	svc := NewAuthService(new(MockAuthGateway), sessions, WithTokenSink(func(tok string) { token = tok }))
	sess, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "jwt", token)
}
