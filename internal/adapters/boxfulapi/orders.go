package boxfulapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"boxful-client/internal/domain"
	"boxful-client/internal/platform/obs"
)

const ordersPath = "/orders"

// envelope is the order service's response wrapper.
type envelope[T any] struct {
	Success *bool            `json:"success"`
	Data    T                `json:"data"`
	Message string           `json:"message"`
	Meta    *domain.PageMeta `json:"meta"`
}

// failed reports an explicit success=false in a 2xx response.
func (e envelope[T]) failed() bool {
	return e.Success != nil && !*e.Success
}

func (e envelope[T]) apiError(fallback string) *APIError {
	msg := e.Message
	if msg == "" {
		msg = fallback
	}
	return &APIError{Message: msg}
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (_ domain.Order, err error) {
	defer obs.Time(ctx, "boxfulapi.CreateOrder")(&err)

	var env envelope[domain.Order]
	if err := c.call(ctx, http.MethodPost, ordersPath, req, &env); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	if env.failed() {
		return domain.Order{}, fmt.Errorf("create order: %w", env.apiError("Error al crear la orden"))
	}

	return env.Data, nil
}

// UserOrders lists one page of a user's orders.
func (c *Client) UserOrders(ctx context.Context, userID string, page, limit int) (_ domain.OrderPage, err error) {
	defer obs.Time(ctx, "boxfulapi.UserOrders")(&err)

	if userID == "" {
		return domain.OrderPage{}, fmt.Errorf("list user orders: user id is empty")
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	path := ordersPath + "/user/" + url.PathEscape(userID) + "?" + q.Encode()

	var env envelope[[]domain.Order]
	if err := c.call(ctx, http.MethodGet, path, nil, &env); err != nil {
		return domain.OrderPage{}, fmt.Errorf("list user orders: %w", err)
	}
	if env.failed() {
		return domain.OrderPage{}, fmt.Errorf("list user orders: %w", env.apiError(FallbackMessage))
	}

	orders := env.Data
	if orders == nil {
		orders = []domain.Order{}
	}
	return domain.OrderPage{Orders: orders, Meta: env.Meta}, nil
}

// Order fetches one order by id.
func (c *Client) Order(ctx context.Context, id string) (_ domain.Order, err error) {
	defer obs.Time(ctx, "boxfulapi.Order")(&err)

	if id == "" {
		return domain.Order{}, fmt.Errorf("get order: id is empty")
	}

	var env envelope[domain.Order]
	if err := c.call(ctx, http.MethodGet, ordersPath+"/"+url.PathEscape(id), nil, &env); err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	if env.failed() {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, env.apiError(FallbackMessage))
	}

	return env.Data, nil
}
