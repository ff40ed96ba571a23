package domain

import "time"

// Status is the server-side lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists the five fixed status categories in display order.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
}

var statusLabels = map[Status]string{
	StatusPending:   "Pendiente",
	StatusConfirmed: "Confirmada",
	StatusInTransit: "En Tránsito",
	StatusDelivered: "Entregada",
	StatusCancelled: "Cancelada",
}

var statusColors = map[Status]string{
	StatusPending:   "#f59e0b",
	StatusConfirmed: "#3b82f6",
	StatusInTransit: "#8b5cf6",
	StatusDelivered: "#10b981",
	StatusCancelled: "#ef4444",
}

// Label returns the human label for the status, or the raw value when unknown.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Color returns the badge color used by printable reports.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#6b7280"
}

// Order is a server-confirmed shipment order. The client only reads it back.
type Order struct {
	ID                 string     `json:"_id"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	PickupAddress      string     `json:"pickupAddress"`
	DestinationAddress string     `json:"destinationAddress"`
	Department         string     `json:"department"`
	Municipality       string     `json:"municipality"`
	ReferencePoint     string     `json:"referencePoint"`
	Information        string     `json:"information"`
	Products           []LineItem `json:"products"`
	Status             Status     `json:"status"`
	UserID             string     `json:"idUserCreate,omitempty"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	EstimatedDate      *time.Time `json:"estimatedDate,omitempty"`
}

// EffectiveDate is the creation date, falling back to the estimated date.
// It returns false when the order carries neither.
func (o Order) EffectiveDate() (time.Time, bool) {
	if o.CreatedAt != nil {
		return *o.CreatedAt, true
	}
	if o.EstimatedDate != nil {
		return *o.EstimatedDate, true
	}
	return time.Time{}, false
}

// TotalWeight sums product weights, treating unparsable values as zero.
func (o Order) TotalWeight() float64 {
	return TotalWeight(o.Products)
}
