package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// SortOrder selects the deterministic order of satchels in a report.
type SortOrder string

const (
	// OrderDesc sorts by canonical key, largest penny count first.
	OrderDesc SortOrder = "desc"
	// OrderAsc sorts by canonical key, smallest penny count first.
	OrderAsc SortOrder = "asc"
	// OrderText sorts the formatted strings in descending byte order.
	OrderText SortOrder = "text"
)

// ParseSortOrder validates a sort order name. Empty selects OrderDesc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(s)) {
	case "", OrderDesc:
		return OrderDesc, nil
	case OrderAsc:
		return OrderAsc, nil
	case OrderText:
		return OrderText, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidSortOrder, "unknown sort order "+strconv.Quote(s)), "order", s)
	}
}

// Format selects how a report is written.
type Format string

const (
	// FormatText writes the count followed by one satchel per line.
	FormatText Format = "text"
	// FormatJSON writes the report as a JSON document.
	FormatJSON Format = "json"
	// FormatYAML writes the report as a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. Empty selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidFormat, "unknown format "+strconv.Quote(s)), "format", s)
	}
}

// Sort returns a sorted copy of satchels. The result depends only on the set
// of satchels, never on the order they were discovered in.
func Sort(satchels []Satchel, order SortOrder) []Satchel {
	sorted := slices.Clone(satchels)
	switch order {
	case OrderAsc:
		slices.SortFunc(sorted, Compare)
	case OrderText:
		slices.SortFunc(sorted, func(a, b Satchel) int {
			return strings.Compare(b.String(), a.String())
		})
	default:
		slices.SortFunc(sorted, func(a, b Satchel) int {
			return Compare(b, a)
		})
	}
	return sorted
}

// Report is the outcome of one enumeration, ready to be written.
type Report struct {
	Amount      int
	Rounds      int
	Order       SortOrder
	Fingerprint string
	Satchels    []Satchel
}

// Count returns the number of distinct satchels in the report.
func (r *Report) Count() int {
	return len(r.Satchels)
}
