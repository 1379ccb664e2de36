package core

import "fmt"

// CategoryFilter is either CategoryAll or one of the categories.
type CategoryFilter string

const CategoryAll CategoryFilter = "all"

func (f CategoryFilter) IsAll() bool {
	return f == CategoryAll || f == ""
}

// Matches reports whether a memory of category c passes the filter.
func (f CategoryFilter) Matches(c Category) bool {
	return f.IsAll() || Category(f) == c
}

func (f CategoryFilter) String() string {
	if f == "" {
		return string(CategoryAll)
	}
	return string(f)
}

func ParseCategoryFilter(s string) (CategoryFilter, error) {
	if s == "" || s == string(CategoryAll) {
		return CategoryAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	return CategoryFilter(c), nil
}

// CategoryFilters lists the selectable filter values, "all" first.
func CategoryFilters() []CategoryFilter {
	res := []CategoryFilter{CategoryAll}
	for _, c := range Categories() {
		res = append(res, CategoryFilter(c))
	}
	return res
}

// FilterState is the transient search/category selection of a browsing session.
type FilterState struct {
	Search   string         `json:"search" yaml:"search"`
	Category CategoryFilter `json:"category" yaml:"category"`
}

func DefaultFilterState() FilterState {
	return FilterState{Category: CategoryAll}
}

func (s FilterState) Normalize() FilterState {
	if s.Category == "" {
		s.Category = CategoryAll
	}
	return s
}

// NewFilterState validates raw user input into a FilterState.
func NewFilterState(search, category string) (FilterState, error) {
	cf, err := ParseCategoryFilter(category)
	if err != nil {
		return FilterState{}, fmt.Errorf("bad category filter: %w", err)
	}
	return FilterState{Search: search, Category: cf}, nil
}
