package catalog

import "context"

// CategoryPredicate is the fixed narrowing a listing page applies before
// any user-driven filtering: an ownership+category pair plus a top-N
// truncation. The truncation happens BEFORE search and filters run, so
// user criteria only ever operate within the top-N slice.
type CategoryPredicate struct {
	Ownership string
	Category  string
	TopN      int // 0 means no truncation
}

// Apply narrows records to the predicate's ownership+category pair and
// truncates the result to TopN entries, preserving store order.
func (p CategoryPredicate) Apply(records []Record) []Record {
	base := Filter(records, Criteria{Ownership: p.Ownership, Category: p.Category})
	if p.TopN > 0 && len(base) > p.TopN {
		base = base[:p.TopN]
	}
	return base
}

// ListingController drives one category listing page: it composes the
// record store, the category predicate and the user-entered search, filter
// and sort state into the sequence of records to render.
type ListingController struct {
	store     *RecordStore
	predicate CategoryPredicate

	SearchText string
	Filters    Criteria // State, City, Course are honored here
	SortKey    SortKey
}

// NewListingController creates a controller for one category page.
func NewListingController(store *RecordStore, predicate CategoryPredicate) *ListingController {
	return &ListingController{
		store:     store,
		predicate: predicate,
		SortKey:   SortByRank,
	}
}

// Load performs the one fetch a page issues on mount.
func (l *ListingController) Load(ctx context.Context) error {
	return l.store.Load(ctx)
}

// Base returns the category-narrowed, top-N-truncated slice the page works
// within. Filter options are derived from this slice, not from the
// currently visible subset.
func (l *ListingController) Base() []Record {
	return l.predicate.Apply(l.store.Records())
}

// Visible returns the records to render: the base slice run through the
// user's search/filter criteria and then the active sort.
func (l *ListingController) Visible() []Record {
	criteria := Criteria{
		Text:   l.SearchText,
		State:  l.Filters.State,
		City:   l.Filters.City,
		Course: l.Filters.Course,
	}
	return SortBy(Filter(l.Base(), criteria), l.SortKey)
}

// FilterOptions returns the selectable values for one filter facet
// (state, city or course), recomputed from the current base slice so the
// options always reflect the full category slice rather than the filtered
// subset.
func (l *ListingController) FilterOptions(field string) []string {
	return DistinctValues(l.Base(), field)
}
