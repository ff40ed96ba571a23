package boxfulapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"boxful-client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/", timeout)
	require.NoError(t, err)
	c.backoff = time.Millisecond
	return c
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ", 0)
	require.Error(t, err)
}

func TestCreateOrder(t *testing.T) {
	var got domain.CreateOrderRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"_id":"abc123","status":"PENDING","createdAt":"2026-05-01T10:00:00.000Z"}}`))
	}), 0)
	c.SetToken("tok-1")

	req := domain.CreateOrderRequest{
		FirstName: "Ana",
		UserID:    "7",
		Products:  []domain.LineItem{{ID: "i1", Length: "10", Height: "10", Width: "10", Weight: "5", Content: "Phone"}},
	}
	order, err := c.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	require.NotNil(t, order.CreatedAt)
	assert.Equal(t, 2026, order.CreatedAt.Year())
	assert.Equal(t, req, got)
}

func TestCreateOrderIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), 0)

	_, err := c.CreateOrder(context.Background(), domain.CreateOrderRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, FallbackMessage, apiErr.Message)
	assert.EqualValues(t, 1, calls.Load())
}

func TestCreateOrderServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":["email must be an email","phone is required"],"error":"Bad Request","statusCode":400}`))
	}), 0)

	_, err := c.CreateOrder(context.Background(), domain.CreateOrderRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email must be an email, phone is required", apiErr.Message)
	assert.Equal(t, "Bad Request", apiErr.Detail)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestCreateOrderEnvelopeFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}), 0)

	_, err := c.CreateOrder(context.Background(), domain.CreateOrderRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Error al crear la orden", apiErr.Message)
}

func TestUserOrdersRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "/orders/user/42", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"o1"},{"_id":"o2"}],
			"meta":{"page":2,"limit":5,"total":7,"totalPages":2,"hasNextPage":false,"hasPrevPage":true}}`))
	}), 0)

	page, err := c.UserOrders(context.Background(), "42", 2, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
	require.Len(t, page.Orders, 2)
	require.NotNil(t, page.Meta)
	assert.Equal(t, 7, page.Meta.Total)
	assert.True(t, page.Meta.HasPrevPage)
}

func TestUserOrdersDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	}), 0)

	_, err := c.UserOrders(context.Background(), "42", 1, 10)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.EqualValues(t, 1, calls.Load())

	_, err = c.UserOrders(context.Background(), "", 1, 10)
	require.Error(t, err)
}

func TestTimeoutIsReportedAndNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}), 20*time.Millisecond)

	_, err := c.Order(context.Background(), "o1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Timeout)
	assert.Equal(t, TimeoutMessage, apiErr.Message)
	assert.EqualValues(t, 1, calls.Load())
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, time.Second)
	require.NoError(t, err)
	c.backoff = time.Millisecond

	_, err = c.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ConnectionMessage, apiErr.Message)
	assert.NotEmpty(t, apiErr.Detail)
	assert.False(t, apiErr.Timeout)
}

func TestCanceledContextPassesThrough(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.CreateOrder(ctx, domain.CreateOrderRequest{})
	require.ErrorIs(t, err, context.Canceled)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRegisterAndLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana", body["nombre"])
		assert.Equal(t, "1990-01-31", body["fechaNacimiento"])
		assert.Equal(t, "+503 7123 4567", body["telefono"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Usuario registrado","user":{"id":7,"nombre":"Ana","email":"ana@boxful.com"}}`))
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","token":"jwt","user":{"id":7,"nombre":"Ana"}}`))
	})
	c := newTestClient(t, mux, 0)

	reg := domain.Registration{
		FirstName: "Ana", LastName: "Pérez", Sex: "F",
		BirthDate: time.Date(1990, 1, 31, 0, 0, 0, 0, time.UTC),
		Email:     "ana@boxful.com", Phone: "+503 7123 4567",
		Password: "Secret123", ConfirmPassword: "Secret123",
	}
	res, err := c.Register(context.Background(), reg.Request())
	require.NoError(t, err)
	assert.Equal(t, 7, res.User.ID)
	assert.Empty(t, res.Token)

	res, err = c.Login(context.Background(), domain.Credentials{Email: "ana@boxful.com", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
}
