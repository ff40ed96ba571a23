package ports

import (
	"context"

	"boxful-client/internal/domain"
)

// Port: the remote order service.
type OrderGateway interface {
	// Submit a new order and return it as confirmed by the server.
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	// List one page of the orders created by a user.
	UserOrders(ctx context.Context, userID string, page, limit int) (domain.OrderPage, error)
	// Fetch a single order.
	Order(ctx context.Context, id string) (domain.Order, error)
}
