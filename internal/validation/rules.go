package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Rule is a declarative set of constraints for one form field.
// Each constraint kind occupies one slot; Merge lets later rules
// overwrite earlier ones slot by slot.
type Rule struct {
	Required  *Message
	MinLength *Length
	MaxLength *Length
	Pattern   *Pattern
	Validate  func(value any) string
}

// Message carries the failure text of a boolean constraint.
type Message struct {
	Message string
}

// Length is a rune-count bound.
type Length struct {
	Value   int
	Message string
}

// Pattern is a regular-expression constraint on text values.
type Pattern struct {
	Value   *regexp.Regexp
	Message string
}

// Merge combines rules left to right. A later rule's constraint replaces
// an earlier constraint of the same kind; other kinds are kept.
func Merge(rules ...Rule) Rule {
	var out Rule
	for _, r := range rules {
		if r.Required != nil {
			out.Required = r.Required
		}
		if r.MinLength != nil {
			out.MinLength = r.MinLength
		}
		if r.MaxLength != nil {
			out.MaxLength = r.MaxLength
		}
		if r.Pattern != nil {
			out.Pattern = r.Pattern
		}
		if r.Validate != nil {
			out.Validate = r.Validate
		}
	}
	return out
}

// Check evaluates the rule against a value and returns the first failure
// message, or "" when the value passes.
//
// Order: required, minLength, maxLength, pattern, validate. Length and
// pattern constraints only apply to non-empty text.
func (r Rule) Check(value any) string {
	empty := isEmpty(value)

	if r.Required != nil && empty {
		return r.Required.Message
	}

	if text, ok := value.(string); ok && !empty {
		n := utf8.RuneCountInString(text)
		if r.MinLength != nil && n < r.MinLength.Value {
			return r.MinLength.Message
		}
		if r.MaxLength != nil && n > r.MaxLength.Value {
			return r.MaxLength.Message
		}
		if r.Pattern != nil && !r.Pattern.Value.MatchString(text) {
			return r.Pattern.Message
		}
	}

	if r.Validate != nil {
		return r.Validate(value)
	}
	return ""
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *time.Time:
		return v == nil || v.IsZero()
	case time.Time:
		return v.IsZero()
	}
	return false
}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	}
	return time.Time{}, false
}
