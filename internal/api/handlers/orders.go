package handlers

import (
	"io"
	"net/http"

	"boxful-client/internal/domain"
	"boxful-client/internal/history"
)

// History is the loaded order history served by the report handlers.
type History interface {
	Page(page, limit int) ([]domain.Order, history.Meta)
	Stats() history.Statistics
	WriteCSV(w io.Writer) (string, error)
	WriteReport(w io.Writer) error
}

type orderResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Municipality string  `json:"municipality"`
	Products     int     `json:"products"`
	WeightLbs    float64 `json:"weightLbs"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
	Date         string  `json:"date"`
}

type listOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
	Meta   history.Meta    `json:"meta"`
}

// OrderHandler exposes read-only views of the filtered history.
type OrderHandler struct {
	History History
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	page, ok := intQuery(r, "page", 1)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	limit, ok := intQuery(r, "limit", history.DefaultLimit)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	orders, meta := h.History.Page(page, limit)

	res := listOrdersResponse{
		Orders: make([]orderResponse, 0, len(orders)),
		Meta:   meta,
	}
	for _, o := range orders {
		var shown string
		if date, ok := o.EffectiveDate(); ok {
			shown = history.FormatDate(&date)
		}
		res.Orders = append(res.Orders, orderResponse{
			ID:           o.ID,
			Name:         o.FirstName + " " + o.LastName,
			Department:   o.Department,
			Municipality: o.Municipality,
			Products:     len(o.Products),
			WeightLbs:    o.TotalWeight(),
			Status:       string(o.Status),
			StatusLabel:  o.Status.Label(),
			Date:         shown,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.History.Stats())
}
