package domain

// PageMeta describes one page of a paginated order list.
type PageMeta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// OrderPage is one page of orders as returned by the order listing.
// Meta is nil when the server did not paginate.
type OrderPage struct {
	Orders []Order
	Meta   *PageMeta
}
