package services

import (
	"context"

	"boxful-client/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockOrderGateway struct {
	mock.Mock
}

func (m *MockOrderGateway) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderGateway) UserOrders(ctx context.Context, userID string, page, limit int) (domain.OrderPage, error) {
	args := m.Called(ctx, userID, page, limit)
	return args.Get(0).(domain.OrderPage), args.Error(1)
}

func (m *MockOrderGateway) Order(ctx context.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *MockAuthGateway) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResponse, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, s domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// userMsgErr stands in for a transport error with a display message.
type userMsgErr struct{ msg string }

func (e *userMsgErr) Error() string       { return "transport: " + e.msg }
func (e *userMsgErr) UserMessage() string { return e.msg }

func signedIn() domain.Session {
	return domain.Session{Token: "jwt", UserID: "7", User: &domain.User{ID: 7, FirstName: "Ana"}}
}
