package wizard

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"boxful-client/internal/domain"
	"boxful-client/internal/validation"

	"github.com/google/uuid"
)

// Step is a state of the order wizard.
type Step int

const (
	Details Step = iota + 1
	Products
)

func (s Step) String() string {
	switch s {
	case Details:
		return "DETAILS"
	case Products:
		return "PRODUCTS"
	}
	return "UNKNOWN"
}

// RatePerPound is the cosmetic subtotal rate shown next to the total weight.
const RatePerPound = 2.5

// defaultDepartment is preselected when a draft starts.
const defaultDepartment = "San Salvador"

var (
	ErrUnknownDepartment   = errors.New("wizard: unknown department")
	ErrUnknownMunicipality = errors.New("wizard: municipality not in selected department")
	ErrUnknownItem         = errors.New("wizard: unknown line item")
)

// Wizard is the two-step order creation flow: DETAILS (step-1 fields) and
// PRODUCTS (line items). It owns one OrderDraft for the whole session.
//
// A Wizard is not safe for concurrent use; callers drive it from a single
// goroutine and gate submission with services.Submitter.
type Wizard struct {
	step    Step
	draft   domain.OrderDraft
	items   []domain.LineItem
	catalog *domain.Catalog
	schema  validation.Schema
	newID   func() string
}

// Option customizes a Wizard.
type Option func(*Wizard)

// WithIDGenerator replaces the line item id generator.
func WithIDGenerator(f func() string) Option {
	return func(w *Wizard) { w.newID = f }
}

// New starts a wizard at DETAILS with the default department selected.
func New(catalog *domain.Catalog, opts ...Option) *Wizard {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	w := &Wizard{
		catalog: catalog,
		schema:  validation.DraftSchema(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Reset()
	return w
}

// Reset discards the draft and line items and returns to DETAILS.
// The default department preselection is applied again, as on a fresh start.
func (w *Wizard) Reset() {
	w.step = Details
	w.draft = domain.OrderDraft{}
	w.items = nil
	_ = w.SelectDepartment(defaultDepartment)
}

func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the step-1 fields.
func (w *Wizard) Draft() domain.OrderDraft { return w.draft }

// Items returns a copy of the line items in order.
func (w *Wizard) Items() []domain.LineItem { return slices.Clone(w.items) }

// SetField assigns a step-1 text field. Department and municipality go
// through their selectors so the catalog constraints hold.
func (w *Wizard) SetField(name, value string) error {
	switch name {
	case domain.FieldDepartment:
		return w.SelectDepartment(value)
	case domain.FieldMunicipality:
		return w.SelectMunicipality(value)
	}
	return w.draft.SetText(name, value)
}

// SetEstimatedDate assigns the scheduled date; nil clears it.
func (w *Wizard) SetEstimatedDate(t *time.Time) {
	if t == nil {
		w.draft.EstimatedDate = nil
		return
	}
	v := *t
	w.draft.EstimatedDate = &v
}

// SelectDepartment changes the department. A change clears the municipality,
// then applies the department's default municipality if it has one.
// Selecting the current department again leaves the municipality alone.
func (w *Wizard) SelectDepartment(name string) error {
	if name != "" && w.catalog.Municipalities(name) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownDepartment, name)
	}
	if name == w.draft.Department {
		return nil
	}

	w.draft.Department = name
	w.draft.Municipality = ""
	if def, ok := w.catalog.DefaultMunicipality(name); ok {
		w.draft.Municipality = def
	}
	return nil
}

// SelectMunicipality picks a municipality of the current department.
// An empty value clears the selection.
func (w *Wizard) SelectMunicipality(name string) error {
	if name != "" && !w.catalog.HasMunicipality(w.draft.Department, name) {
		return fmt.Errorf("%w: %q in %q", ErrUnknownMunicipality, name, w.draft.Department)
	}
	w.draft.Municipality = name
	return nil
}

// MunicipalityOptions lists the valid municipalities for the selected department.
func (w *Wizard) MunicipalityOptions() []string {
	if w.draft.Department == "" {
		return nil
	}
	return w.catalog.Municipalities(w.draft.Department)
}

// ValidateDetails runs the step-1 schema.
func (w *Wizard) ValidateDetails() error {
	if errs := w.schema.Validate(w.draft.Value); len(errs) > 0 {
		return &StepError{Kind: MissingFields, Fields: errs}
	}
	return nil
}

// Next moves DETAILS -> PRODUCTS when every step-1 field is valid.
// The first arrival at PRODUCTS seeds one blank line item.
func (w *Wizard) Next() error {
	if w.step == Products {
		return nil
	}
	if err := w.ValidateDetails(); err != nil {
		return err
	}
	w.step = Products
	if len(w.items) == 0 {
		w.AddItem()
	}
	return nil
}

// Back returns to DETAILS. Line items are kept.
func (w *Wizard) Back() {
	w.step = Details
}

// AddItem appends a blank line item and returns its id.
func (w *Wizard) AddItem() string {
	id := w.newID()
	w.items = append(w.items, domain.LineItem{ID: id})
	return id
}

// RemoveItem deletes a line item unless it is the last one.
// It reports whether an item was removed.
func (w *Wizard) RemoveItem(id string) bool {
	if len(w.items) <= 1 {
		return false
	}
	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	w.items = slices.Delete(w.items, i, i+1)
	return true
}

// UpdateItem replaces one field of one line item.
func (w *Wizard) UpdateItem(id string, field domain.ItemField, value string) error {
	i := w.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	updated, err := w.items[i].With(field, value)
	if err != nil {
		return err
	}
	w.items[i] = updated
	return nil
}

func (w *Wizard) indexOf(id string) int {
	return slices.IndexFunc(w.items, func(li domain.LineItem) bool { return li.ID == id })
}

// CheckProducts fails when there are no items or any item has a blank field.
func (w *Wizard) CheckProducts() error {
	if len(w.items) == 0 {
		return &StepError{Kind: EmptyProducts}
	}
	var incomplete []string
	for _, it := range w.items {
		if !it.Complete() {
			incomplete = append(incomplete, it.ID)
		}
	}
	if len(incomplete) > 0 {
		return &StepError{Kind: IncompleteProducts, Items: incomplete}
	}
	return nil
}

// Prepare runs both submission guards and builds the request payload.
// A step-1 failure sends the wizard back to DETAILS. The details schema
// requires the scheduled date, so the now fallback below is not reached
// through the public API.
func (w *Wizard) Prepare(userID string, now time.Time) (domain.CreateOrderRequest, error) {
	if err := w.ValidateDetails(); err != nil {
		w.step = Details
		return domain.CreateOrderRequest{}, err
	}
	if err := w.CheckProducts(); err != nil {
		return domain.CreateOrderRequest{}, err
	}

	return w.request(userID, now), nil
}

func (w *Wizard) request(userID string, now time.Time) domain.CreateOrderRequest {
	scheduled := now
	if w.draft.EstimatedDate != nil {
		scheduled = *w.draft.EstimatedDate
	}

	d := w.draft
	return domain.CreateOrderRequest{
		PickupAddress:      d.PickupAddress,
		EstimatedDate:      FormatTimestamp(scheduled),
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Email:              d.Email,
		Phone:              d.Phone,
		DestinationAddress: d.DestinationAddress,
		Department:         d.Department,
		Municipality:       d.Municipality,
		ReferencePoint:     d.ReferencePoint,
		Information:        d.Information,
		UserID:             userID,
		Products:           w.Items(),
	}
}

// FormatTimestamp renders t as a UTC ISO-8601 timestamp with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// TotalWeight sums the item weights; unparsable weights count as zero.
func (w *Wizard) TotalWeight() float64 { return domain.TotalWeight(w.items) }

// TotalVolume sums length*height*width over the items.
func (w *Wizard) TotalVolume() float64 { return domain.TotalVolume(w.items) }

// ContentSummary joins the non-blank item contents.
func (w *Wizard) ContentSummary() string { return domain.ContentSummary(w.items) }

// Subtotal is TotalWeight times RatePerPound.
func (w *Wizard) Subtotal() float64 { return w.TotalWeight() * RatePerPound }
