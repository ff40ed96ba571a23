// Package history holds the read side of the order history: date filtering,
// statistics, selection, pagination and the CSV / printable exports.
package history

import (
	"time"

	"boxful-client/internal/domain"
)

// DisplayZone is the location dates are rendered in.
var DisplayZone = time.Local

// FilterByDate returns the orders whose effective date lies in r.
// An unbounded range returns every order. Orders with no date at all are
// dropped once either side is bounded. The input is not modified.
func FilterByDate(orders []domain.Order, r domain.DateRange) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if r.Unbounded() {
			out = append(out, o)
			continue
		}
		at, ok := o.EffectiveDate()
		if ok && r.Contains(at) {
			out = append(out, o)
		}
	}
	return out
}

// FormatDate renders t as "dd/mm/yyyy, hh:mm", or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(DisplayZone).Format("02/01/2006, 15:04")
}

// Filename is the CSV download name for an export made at now.
func Filename(now time.Time) string {
	return "mis-envios-" + now.UTC().Format(time.DateOnly) + ".csv"
}
