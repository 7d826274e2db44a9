package ability

import (
	"ability/pkg/logging"
	pkgstrings "ability/pkg/strings"
)

// Filter narrows an ability listing. A nil field is not applied; set fields
// combine with logical AND.
type Filter struct {
	// Category keeps abilities whose category slug equals the value.
	Category *string
	// Namespace keeps abilities whose name prefix before the first "/" equals
	// the value. Names without a "/" have an empty namespace.
	Namespace *string
	// ShowInREST is parsed as a loose boolean. An unparseable value disables
	// the filter instead of failing the listing.
	ShowInREST *string
}

// IsEmpty returns true if no filters are set.
func (f Filter) IsEmpty() bool {
	return f.Category == nil && f.Namespace == nil && f.ShowInREST == nil
}

// Apply returns the abilities matching every set filter, in their original
// order. The input slice is not modified.
func (f Filter) Apply(abilities []*Ability) []*Ability {
	if f.IsEmpty() {
		return abilities
	}

	var wantREST *bool
	if f.ShowInREST != nil {
		b, err := pkgstrings.ParseBool(*f.ShowInREST)
		if err != nil {
			logging.Debug("Filter", "ignoring --show-in-rest=%q: %v", *f.ShowInREST, err)
		} else {
			wantREST = &b
		}
	}

	filtered := make([]*Ability, 0, len(abilities))
	for _, a := range abilities {
		if f.Category != nil && a.Category != *f.Category {
			continue
		}
		if f.Namespace != nil && a.Namespace() != *f.Namespace {
			continue
		}
		if wantREST != nil && a.ShowInREST() != *wantREST {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}
