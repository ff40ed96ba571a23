package validation

import "strings"

// Field binds a rule to a named form field.
type Field struct {
	Name string
	Rule Rule
}

// Schema is an ordered set of field rules.
type Schema []Field

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors preserves schema order.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in schema order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for _, e := range fe {
		out = append(out, e.Field)
	}
	return out
}

// Map returns the failures keyed by field name.
func (fe FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		out[e.Field] = e.Message
	}
	return out
}

// Get returns the message for a field, or "".
func (fe FieldErrors) Get(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Validate checks every field, reading values through lookup.
// It returns nil when all fields pass.
func (s Schema) Validate(lookup func(name string) any) FieldErrors {
	var errs FieldErrors
	for _, f := range s {
		if msg := f.Rule.Check(lookup(f.Name)); msg != "" {
			errs = append(errs, FieldError{Field: f.Name, Message: msg})
		}
	}
	return errs
}
