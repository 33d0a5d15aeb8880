package services

import (
	"slices"

	"cop_dashboard/models"
	"cop_dashboard/utils"
)

// AllOption disables a filter.
const AllOption = "All"

// Filter is the sidebar selection. An empty list means no restriction on that column.
type Filter struct {
	Langs []string
	Cops  []string
}

// NewFilter builds a filter from multi-select values. "All" anywhere in a list, or an empty
// list, leaves that column unrestricted. COP values are normalized like the dataset column.
func NewFilter(langs, cops []string) Filter {
	var f Filter
	langs = utils.DeduplicateSlice(langs)
	if !slices.Contains(langs, AllOption) {
		f.Langs = langs
	}
	cops = utils.DeduplicateSlice(cops)
	if !slices.Contains(cops, AllOption) {
		for _, c := range cops {
			if n := utils.NormalizeCop(c); n != "" {
				c = n
			}
			if !slices.Contains(f.Cops, c) {
				f.Cops = append(f.Cops, c)
			}
		}
	}
	return f
}

// IsAll reports whether the filter keeps every row.
func (f Filter) IsAll() bool {
	return len(f.Langs) == 0 && len(f.Cops) == 0
}

// Match is the conjunction of the lang and cop predicates.
func (f Filter) Match(r models.Filterable) bool {
	if len(f.Langs) > 0 && !slices.Contains(f.Langs, r.Language()) {
		return false
	}
	if len(f.Cops) > 0 && !slices.Contains(f.Cops, r.Edition()) {
		return false
	}
	return true
}

// LangOnly drops the COP restriction.
func (f Filter) LangOnly() Filter {
	return Filter{Langs: f.Langs}
}

// Apply keeps the rows matching f. The input slice is returned as is when f keeps everything.
func Apply[T models.Filterable](rows []T, f Filter) []T {
	if f.IsAll() {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// ApplyFilters filters on a single language and COP edition, either of which may be "All".
func ApplyFilters[T models.Filterable](rows []T, lang, cop string) []T {
	return Apply(rows, NewFilter([]string{lang}, []string{cop}))
}

// AvailableOptions lists the distinct languages (sorted) and COP editions (numeric order).
func AvailableOptions[T models.Filterable](rows []T) models.Options {
	langSet := make(map[string]struct{})
	copSet := make(map[string]struct{})
	for _, r := range rows {
		if l := r.Language(); l != "" {
			langSet[l] = struct{}{}
		}
		if c := r.Edition(); c != "" {
			copSet[c] = struct{}{}
		}
	}

	opts := models.Options{
		Langs: make([]string, 0, len(langSet)),
		Cops:  make([]string, 0, len(copSet)),
	}
	for l := range langSet {
		opts.Langs = append(opts.Langs, l)
	}
	for c := range copSet {
		opts.Cops = append(opts.Cops, c)
	}
	slices.Sort(opts.Langs)
	slices.SortFunc(opts.Cops, utils.CompareCops)
	return opts
}
