package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ItemField names one editable field of a LineItem.
type ItemField string

const (
	ItemLength  ItemField = "length"
	ItemHeight  ItemField = "height"
	ItemWidth   ItemField = "width"
	ItemWeight  ItemField = "weight"
	ItemContent ItemField = "content"
)

// ItemFields lists every field a complete LineItem must carry.
var ItemFields = []ItemField{ItemLength, ItemHeight, ItemWidth, ItemWeight, ItemContent}

// LineItem is one physical package within an order.
// Dimensions and weight stay as raw text until they are aggregated.
type LineItem struct {
	ID      string `json:"id" yaml:"id"`
	Length  string `json:"length" yaml:"length"`
	Height  string `json:"height" yaml:"height"`
	Width   string `json:"width" yaml:"width"`
	Weight  string `json:"weight" yaml:"weight"`
	Content string `json:"content" yaml:"content"`
}

// Get returns the value of a single field.
func (li LineItem) Get(f ItemField) (string, error) {
	switch f {
	case ItemLength:
		return li.Length, nil
	case ItemHeight:
		return li.Height, nil
	case ItemWidth:
		return li.Width, nil
	case ItemWeight:
		return li.Weight, nil
	case ItemContent:
		return li.Content, nil
	}
	return "", fmt.Errorf("line item: unknown field %q", f)
}

// With returns a copy of the item with one field replaced.
func (li LineItem) With(f ItemField, value string) (LineItem, error) {
	switch f {
	case ItemLength:
		li.Length = value
	case ItemHeight:
		li.Height = value
	case ItemWidth:
		li.Width = value
	case ItemWeight:
		li.Weight = value
	case ItemContent:
		li.Content = value
	default:
		return li, fmt.Errorf("line item: unknown field %q", f)
	}
	return li, nil
}

// Complete reports whether all five fields are non-blank.
func (li LineItem) Complete() bool {
	for _, f := range ItemFields {
		v, _ := li.Get(f)
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Summary renders "content (LxHxWcm, Wlbs)".
func (li LineItem) Summary() string {
	return fmt.Sprintf("%s (%sx%sx%scm, %slbs)", li.Content, li.Length, li.Height, li.Width, li.Weight)
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the leading decimal number in s.
// Text with no numeric prefix counts as zero.
func ParseAmount(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// TotalWeight sums ParseAmount(weight) over items.
func TotalWeight(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += ParseAmount(it.Weight)
	}
	return total
}

// TotalVolume sums length*height*width over items, in cubic centimeters.
func TotalVolume(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += ParseAmount(it.Length) * ParseAmount(it.Height) * ParseAmount(it.Width)
	}
	return total
}

// ContentSummary joins non-blank content descriptions with ", ".
func ContentSummary(items []LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Content) == "" {
			continue
		}
		parts = append(parts, it.Content)
	}
	return strings.Join(parts, ", ")
}
