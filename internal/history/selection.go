package history

import (
	"slices"

	"boxful-client/internal/domain"
)

// Selection is the set of checked order ids. The zero value is empty.
type Selection struct {
	ids []string
	all bool
}

// Toggle flips one id. Checking the last unchecked visible order marks the
// selection as all-selected; unchecking any order clears that mark. Ids
// outside visible are kept but never count toward all-selected.
func (s *Selection) Toggle(id string, visible []domain.Order) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		s.all = false
		return
	}
	s.ids = append(s.ids, id)
	s.all = s.coversAll(visible)
}

func (s *Selection) coversAll(visible []domain.Order) bool {
	if len(visible) == 0 {
		return false
	}
	for _, o := range visible {
		if !s.Has(o.ID) {
			return false
		}
	}
	return true
}

// ToggleAll selects every visible order, or clears the selection when all
// were already selected.
func (s *Selection) ToggleAll(visible []domain.Order) {
	if s.all {
		s.Clear()
		return
	}
	s.ids = s.ids[:0]
	for _, o := range visible {
		s.ids = append(s.ids, o.ID)
	}
	s.all = true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
	s.all = false
}

// AllSelected reports the select-all checkbox state.
func (s *Selection) AllSelected() bool { return s.all }

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string { return slices.Clone(s.ids) }

func (s *Selection) Len() int { return len(s.ids) }

func (s *Selection) Has(id string) bool { return slices.Contains(s.ids, id) }

// Pick returns the orders to export: the selected ones, in list order,
// or every order when nothing is selected.
func (s *Selection) Pick(orders []domain.Order) []domain.Order {
	if len(s.ids) == 0 {
		return slices.Clone(orders)
	}
	out := make([]domain.Order, 0, len(s.ids))
	for _, o := range orders {
		if s.Has(o.ID) {
			out = append(out, o)
		}
	}
	return out
}
