package history

import (
	"time"

	"boxful-client/internal/domain"
)

// Statistics aggregates a list of orders.
type Statistics struct {
	Total     int                   `json:"total"`
	ByStatus  map[domain.Status]int `json:"byStatus"`
	Products  int                   `json:"totalProducts"`
	WeightLbs float64               `json:"totalWeight"`
}

// Count returns the number of orders in status s.
func (s Statistics) Count(status domain.Status) int {
	return s.ByStatus[status]
}

// Compute aggregates orders. Every fixed status has an entry, zero if unseen.
// Orders in an unknown status count toward Total only.
func Compute(orders []domain.Order) Statistics {
	st := Statistics{ByStatus: make(map[domain.Status]int, len(domain.Statuses))}
	for _, s := range domain.Statuses {
		st.ByStatus[s] = 0
	}
	for _, o := range orders {
		st.Total++
		if _, known := st.ByStatus[o.Status]; known {
			st.ByStatus[o.Status]++
		}
		st.Products += len(o.Products)
		st.WeightLbs += o.TotalWeight()
	}
	return st
}

// ExportStats is the statistics block embedded in exports.
type ExportStats struct {
	Statistics
	ExportDate string
	DateRange  string
}

// NewExportStats computes the statistics of orders for an export made at now
// over range r.
func NewExportStats(orders []domain.Order, r domain.DateRange, now time.Time) ExportStats {
	return ExportStats{
		Statistics: Compute(orders),
		ExportDate: FormatDate(&now),
		DateRange:  r.Describe(),
	}
}
