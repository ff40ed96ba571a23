package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"boxful-client/internal/domain"
	"boxful-client/internal/platform/obs"
	"boxful-client/internal/ports"
	"boxful-client/internal/wizard"

	"github.com/rs/zerolog/log"
)

// OrderSubmitter sends a completed wizard draft to the order service.
// At most one submission runs at a time.
type OrderSubmitter struct {
	orders   ports.OrderGateway
	sessions ports.SessionStore
	now      func() time.Time
	inFlight atomic.Bool
}

func NewOrderSubmitter(orders ports.OrderGateway, sessions ports.SessionStore) *OrderSubmitter {
	return &OrderSubmitter{orders: orders, sessions: sessions, now: time.Now}
}

// InFlight reports whether a submission is waiting for the server.
func (s *OrderSubmitter) InFlight() bool { return s.inFlight.Load() }

// Submit validates both wizard steps, sends the order and resets the wizard
// on success. On failure the draft is left as it was so the user can retry.
//
// ctx scopes the call to its initiating view: if ctx ends before the server
// answers, the response is discarded, the wizard is not touched and
// ctx.Err() is returned.
func (s *OrderSubmitter) Submit(ctx context.Context, w *wizard.Wizard) (_ domain.Order, err error) {
	defer obs.Time(ctx, "services.SubmitOrder")(&err)

	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.Order{}, ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	req, err := s.Prepare(ctx, w)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.orders.CreateOrder(ctx, req)
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug().Err(ctxErr).Msg("order submission outlived its scope, discarding result")
		return domain.Order{}, fmt.Errorf("submit order: %w", ctxErr)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("submit order: %w", err)
	}

	w.Reset()
	log.Info().Str("order_id", order.ID).Int("products", len(req.Products)).Msg("order created")
	return order, nil
}

// Prepare runs the submission guards and builds the payload without
// sending it.
func (s *OrderSubmitter) Prepare(ctx context.Context, w *wizard.Wizard) (domain.CreateOrderRequest, error) {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return domain.CreateOrderRequest{}, fmt.Errorf("submit order: load session: %w", err)
	}
	if !sess.Authenticated() || sess.UserID == "" {
		return domain.CreateOrderRequest{}, ErrNotAuthenticated
	}
	return w.Prepare(sess.UserID, s.now())
}
