package domain

import (
	"fmt"
	"time"
)

// DateRange is an optional inclusive [Start, End] bound.
// A nil side imposes no constraint.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Unbounded reports whether neither side is set.
func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether t lies within the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Describe renders the range as shown in export headers.
func (r DateRange) Describe() string {
	const layout = "02/01/2006"
	switch {
	case r.Start != nil && r.End != nil:
		return fmt.Sprintf("%s - %s", r.Start.Format(layout), r.End.Format(layout))
	case r.Start != nil:
		return fmt.Sprintf("Desde %s", r.Start.Format(layout))
	case r.End != nil:
		return fmt.Sprintf("Hasta %s", r.End.Format(layout))
	}
	return "Todas las fechas"
}
