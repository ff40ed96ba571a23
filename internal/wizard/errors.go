package wizard

import (
	"fmt"
	"strings"

	"boxful-client/internal/domain"
	"boxful-client/internal/validation"
)

// FailureKind classifies why a forward transition or submission was refused.
type FailureKind int

const (
	MissingFields FailureKind = iota + 1
	EmptyProducts
	IncompleteProducts
)

func (k FailureKind) String() string {
	switch k {
	case MissingFields:
		return "missing_fields"
	case EmptyProducts:
		return "empty_products"
	case IncompleteProducts:
		return "incomplete_products"
	}
	return "unknown"
}

// StepError reports a refused transition.
type StepError struct {
	Kind FailureKind
	// Fields holds the offending step-1 field errors for MissingFields.
	Fields validation.FieldErrors
	// Items holds the ids of incomplete line items for IncompleteProducts.
	Items []string
}

func (e *StepError) Error() string {
	switch e.Kind {
	case MissingFields:
		return fmt.Sprintf("wizard: invalid fields: %s", strings.Join(e.Fields.Fields(), ", "))
	case EmptyProducts:
		return "wizard: no products"
	case IncompleteProducts:
		return fmt.Sprintf("wizard: incomplete products: %s", strings.Join(e.Items, ", "))
	}
	return "wizard: step refused"
}

// Labels returns the human labels of the offending fields.
func (e *StepError) Labels() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		out = append(out, domain.FieldLabel(f))
	}
	return out
}

// Title is the dialog heading for this failure.
func (e *StepError) Title() string {
	switch e.Kind {
	case MissingFields:
		return "Campos requeridos"
	case EmptyProducts:
		return "Sin productos"
	case IncompleteProducts:
		return "Productos incompletos"
	}
	return ""
}

// Message is the dialog body for this failure.
func (e *StepError) Message() string {
	switch e.Kind {
	case MissingFields:
		return fmt.Sprintf("Por favor completa los siguientes campos: %s", strings.Join(e.Labels(), ", "))
	case EmptyProducts:
		return "Debes agregar al menos un producto para crear la orden."
	case IncompleteProducts:
		return "Por favor completa todos los campos de los productos (largo, alto, ancho, peso y contenido)."
	}
	return ""
}
