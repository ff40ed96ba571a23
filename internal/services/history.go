package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"boxful-client/internal/domain"
	"boxful-client/internal/history"
	"boxful-client/internal/platform/obs"
	"boxful-client/internal/ports"
	"boxful-client/internal/validation"

	"github.com/rs/zerolog/log"
)

const (
	historyPageSize = 100
	historyMaxPages = 50
)

// HistoryView is the order history of the signed-in user: the loaded list,
// the active date range and the row selection.
//
// HistoryView is safe for concurrent use.
type HistoryView struct {
	orders   ports.OrderGateway
	sessions ports.SessionStore
	now      func() time.Time

	mu     sync.Mutex
	all    []domain.Order
	bounds domain.DateRange
	filter domain.DateRange
	sel    history.Selection
}

func NewHistoryView(orders ports.OrderGateway, sessions ports.SessionStore) *HistoryView {
	return &HistoryView{orders: orders, sessions: sessions, now: time.Now}
}

// Load fetches every order of the signed-in user, page by page, and
// replaces the list. The selection is cleared.
//
// If ctx ends before loading completes, nothing is replaced and ctx.Err()
// is returned.
func (v *HistoryView) Load(ctx context.Context) (err error) {
	defer obs.Time(ctx, "services.LoadHistory")(&err)

	sess, err := v.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history: load session: %w", err)
	}
	if !sess.Authenticated() || sess.UserID == "" {
		return ErrNotAuthenticated
	}

	var all []domain.Order
	for page := 1; page <= historyMaxPages; page++ {
		res, err := v.orders.UserOrders(ctx, sess.UserID, page, historyPageSize)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("load history: %w", ctxErr)
		}
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		all = append(all, res.Orders...)
		if res.Meta == nil || !res.Meta.HasNextPage || len(res.Orders) == 0 {
			break
		}
		if page == historyMaxPages {
			log.Warn().
				Int("pages", historyMaxPages).
				Int("orders", len(all)).
				Msg("history truncated: server reports more pages")
		}
	}

	v.mu.Lock()
	v.all = all
	v.sel.Clear()
	v.mu.Unlock()

	log.Debug().Int("orders", len(all)).Msg("history loaded")
	return nil
}

// SetOrders replaces the list without a remote call.
func (v *HistoryView) SetOrders(orders []domain.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.all = append([]domain.Order(nil), orders...)
	v.sel.Clear()
}

// SetRange validates and applies a date filter. Neither bound may lie in
// the future and the end may not precede the start. The end bound covers
// its whole day. Any change clears the selection.
func (v *HistoryView) SetRange(r domain.DateRange) error {
	if errs := validation.CheckRange(r); len(errs) > 0 {
		return FilterError{Errors: errs}
	}

	filter := r
	if r.End != nil {
		end := endOfDay(*r.End)
		filter.End = &end
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.bounds = r
	v.filter = filter
	v.sel.Clear()
	return nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Range returns the date range as entered.
func (v *HistoryView) Range() domain.DateRange {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bounds
}

// Filtered returns the orders inside the active range.
func (v *HistoryView) Filtered() []domain.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return history.FilterByDate(v.all, v.filter)
}

// Page returns one page of the filtered list.
func (v *HistoryView) Page(page, limit int) ([]domain.Order, history.Meta) {
	return history.Paginate(v.Filtered(), page, limit)
}

// Stats aggregates the filtered list.
func (v *HistoryView) Stats() history.Statistics {
	return history.Compute(v.Filtered())
}

// Toggle flips one row's checkbox.
func (v *HistoryView) Toggle(id string) {
	visible := v.Filtered()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel.Toggle(id, visible)
}

// ToggleAll flips the select-all checkbox over the filtered list.
func (v *HistoryView) ToggleAll() {
	visible := v.Filtered()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel.ToggleAll(visible)
}

// Select replaces the selection with ids, in order.
func (v *HistoryView) Select(ids []string) {
	visible := v.Filtered()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel.Clear()
	for _, id := range ids {
		if !v.sel.Has(id) {
			v.sel.Toggle(id, visible)
		}
	}
}

// Selected returns the selected ids and the select-all state.
func (v *HistoryView) Selected() ([]string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sel.IDs(), v.sel.AllSelected()
}

// Export returns the rows to export and the statistics block. Rows are the
// selected orders, or the whole filtered list when nothing is selected;
// statistics always cover the filtered list.
func (v *HistoryView) Export() ([]domain.Order, history.ExportStats) {
	filtered := v.Filtered()

	v.mu.Lock()
	rows := v.sel.Pick(filtered)
	bounds := v.bounds
	v.mu.Unlock()

	return rows, history.NewExportStats(filtered, bounds, v.now())
}

// WriteCSV writes the CSV export and returns its download file name.
func (v *HistoryView) WriteCSV(w io.Writer) (string, error) {
	rows, st := v.Export()
	if err := history.WriteCSV(w, rows, st); err != nil {
		return "", err
	}
	return history.Filename(v.now()), nil
}

// WriteReport writes the printable HTML export.
func (v *HistoryView) WriteReport(w io.Writer) error {
	rows, st := v.Export()
	return history.WriteReport(w, rows, st)
}
