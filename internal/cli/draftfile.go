package cli

import (
	"fmt"
	"io"

	"boxful-client/internal/domain"
	"boxful-client/internal/wizard"

	"gopkg.in/yaml.v3"
)

// draftFile is the YAML form of an order: the step-1 fields plus the
// products list.
type draftFile struct {
	domain.OrderDraft `yaml:",inline"`
	Products          []domain.LineItem `yaml:"products"`
}

func readDraft(r io.Reader) (draftFile, error) {
	var f draftFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return draftFile{}, fmt.Errorf("read draft: %w", err)
	}
	return f, nil
}

// fill walks w through both steps with the file's contents. Empty fields
// keep the wizard's defaults. The wizard is left on PRODUCTS.
func (f draftFile) fill(w *wizard.Wizard) error {
	for _, name := range domain.DraftFields {
		if name == domain.FieldEstimatedDate {
			continue
		}
		v, _ := f.Value(name).(string)
		if v == "" {
			continue
		}
		if err := w.SetField(name, v); err != nil {
			return fmt.Errorf("draft field %s: %w", name, err)
		}
	}
	w.SetEstimatedDate(f.EstimatedDate)

	if err := w.Next(); err != nil {
		return err
	}

	items := w.Items()
	for i, p := range f.Products {
		var id string
		if i < len(items) {
			id = items[i].ID
		} else {
			id = w.AddItem()
		}
		for _, field := range domain.ItemFields {
			v, err := p.Get(field)
			if err != nil {
				return err
			}
			if err := w.UpdateItem(id, field, v); err != nil {
				return fmt.Errorf("product %d: %w", i+1, err)
			}
		}
	}
	return nil
}
