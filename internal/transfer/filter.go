package transfer

import (
	"sort"
	"strings"
)

// SetCategoryFilter narrows the available side to items whose category
// matches one of the given values, by code or by label. An empty set lifts
// the restriction. The selected side is never filtered. It returns false
// when the schema has no category mapping.
func (e *Engine[K, T]) SetCategoryFilter(categories []string) bool {
	if e.closed || e.schema.Category == nil {
		return false
	}
	e.categories = nil
	for _, c := range categories {
		code := e.canonical(c)
		if code == "" {
			continue
		}
		if e.categories == nil {
			e.categories = make(map[string]struct{}, len(categories))
		}
		e.categories[code] = struct{}{}
	}
	e.refresh()
	return true
}

// Categories returns the active category filter as sorted codes
func (e *Engine[K, T]) Categories() []string {
	out := make([]string, 0, len(e.categories))
	for c := range e.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Categorized reports whether the available side can be narrowed by category
func (e *Engine[K, T]) Categorized() bool {
	return e.schema.Category != nil
}

// canonical maps a category code or label to its code
func (e *Engine[K, T]) canonical(v string) string {
	v = strings.TrimSpace(v)
	for _, c := range e.schema.Choices {
		if c.matches(v) {
			return c.Code
		}
	}
	return v
}

func (e *Engine[K, T]) inCategory(item T) bool {
	_, ok := e.categories[e.canonical(e.schema.Category(item))]
	return ok
}

// Search sets the search term of a side. An empty term shows every
// eligible item again.
func (e *Engine[K, T]) Search(side Side, term string) {
	if e.closed {
		return
	}
	e.terms[side] = term
	e.refresh()
}

// SearchLeft sets the search term of the available side
func (e *Engine[K, T]) SearchLeft(term string) {
	e.Search(Left, term)
}

// SearchRight sets the search term of the selected side
func (e *Engine[K, T]) SearchRight(term string) {
	e.Search(Right, term)
}

// Term returns the search term of a side
func (e *Engine[K, T]) Term(side Side) string {
	return e.terms[side]
}

func (e *Engine[K, T]) search(items []T, term string) []T {
	if strings.TrimSpace(term) == "" || e.schema.SearchFields == nil {
		return items
	}
	needle := e.folder.String(term)
	var out []T
	for _, item := range items {
		for _, field := range e.schema.SearchFields(item) {
			if strings.Contains(e.folder.String(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
