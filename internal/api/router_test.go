package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boxful-client/internal/domain"
	"boxful-client/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	orders []domain.Order
	err    error
}

func (f *fakeHistory) Page(page, limit int) ([]domain.Order, history.Meta) {
	return history.Paginate(f.orders, page, limit)
}

func (f *fakeHistory) Stats() history.Statistics {
	return history.Compute(f.orders)
}

func (f *fakeHistory) WriteCSV(w io.Writer) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	st := history.NewExportStats(f.orders, domain.DateRange{}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	return "mis-envios-2025-03-01.csv", history.WriteCSV(w, f.orders, st)
}

func (f *fakeHistory) WriteReport(w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	st := history.NewExportStats(f.orders, domain.DateRange{}, time.Now())
	return history.WriteReport(w, f.orders, st)
}

func sample() *fakeHistory {
	created := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	return &fakeHistory{orders: []domain.Order{
		{ID: "a1", FirstName: "Ana", LastName: "Pérez", Department: "San Salvador", Municipality: "Soyapango",
			Status: domain.StatusDelivered, CreatedAt: &created,
			Products: []domain.LineItem{{Content: "Libro", Weight: "2"}}},
		{ID: "b2", FirstName: "Luis", LastName: "Gómez", Status: domain.StatusPending},
	}}
}

func TestHealth(t *testing.T) {
	router := NewRouter(sample(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestListOrders(t *testing.T) {
	router := NewRouter(sample(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?page=1&limit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "a1", res.Orders[0].ID)
	assert.Equal(t, "Ana Pérez", res.Orders[0].Name)
	assert.Equal(t, "Entregada", res.Orders[0].StatusLabel)
	assert.Equal(t, 2.0, res.Orders[0].WeightLbs)
	assert.Equal(t, 2, res.Meta.TotalPages)
	assert.True(t, res.Meta.HasNextPage)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type listResponse struct {
	Orders []struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		StatusLabel string  `json:"statusLabel"`
		WeightLbs   float64 `json:"weightLbs"`
	} `json:"orders"`
	Meta history.Meta `json:"meta"`
}

func TestStats(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(sample(), nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var st history.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.Count(domain.StatusPending))
	assert.Equal(t, 1, st.Products)
}

func TestReportEndpointsSignalServed(t *testing.T) {
	served := 0
	router := NewRouter(sample(), func() { served++ })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Ana Pérez")
	assert.Equal(t, 1, served)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report.csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="mis-envios-2025-03-01.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\ufeff"))
	assert.Equal(t, 2, served)
}

func TestReportFailureIsNotServed(t *testing.T) {
	served := false
	h := sample()
	h.err = errors.New("template broke")

	rec := httptest.NewRecorder()
	NewRouter(h, func() { served = true }).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, served)
}

func TestReportServerStopsAfterFirstExport(t *testing.T) {
	srv, err := NewReportServer("127.0.0.1:0", sample())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background()) }()

	res, err := http.Get(srv.URL() + "/report")
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "a1")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after the report was served")
	}
}

func TestReportServerStopsWithContext(t *testing.T) {
	srv, err := NewReportServer("127.0.0.1:0", sample())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}
