package history

import "boxful-client/internal/domain"

// Meta describes one page of a paginated list.
type Meta = domain.PageMeta

const DefaultLimit = 10

// NewMeta computes page metadata. Page is clamped to at least 1 and limit
// falls back to DefaultLimit when not positive.
func NewMeta(page, limit, total int) Meta {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	pages := (total + limit - 1) / limit
	return Meta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  pages,
		HasNextPage: page < pages,
		HasPrevPage: page > 1,
	}
}

// Paginate returns page (1-based) of orders. A page past the end is empty.
func Paginate(orders []domain.Order, page, limit int) ([]domain.Order, Meta) {
	m := NewMeta(page, limit, len(orders))
	if m.Page > m.TotalPages {
		return []domain.Order{}, m
	}
	start := (m.Page - 1) * m.Limit
	end := min(start+m.Limit, len(orders))
	return orders[start:end], m
}
