package matching

import (
	"strings"

	"outreach-server/internal/store"
)

// Predicate reports whether an offer satisfies one account filter
type Predicate func(offer store.JobOffer) bool

// Filter is the combined filter of an account
type Filter struct {
	predicates []Predicate
	mode       store.MatchMode
}

// NewFilter builds the predicates for every enabled filter of the account.
// A filter enabled without values is a no-op.
func NewFilter(account store.Account) Filter {
	var predicates []Predicate

	if account.FilterCountriesEnabled {
		if p := membership(account.Countries, func(o store.JobOffer) string { return o.Country }); p != nil {
			predicates = append(predicates, p)
		}
	}
	if account.FilterCitiesEnabled {
		if p := membership(account.Cities, func(o store.JobOffer) string { return o.City }); p != nil {
			predicates = append(predicates, p)
		}
	}
	if account.FilterJobTitleEnabled {
		if p := jobTitle(account.JobTitle, account.JobTitleMatch); p != nil {
			predicates = append(predicates, p)
		}
	}

	mode := account.MatchMode
	if mode != store.MatchModeAny {
		mode = store.MatchModeAll
	}
	return Filter{predicates: predicates, mode: mode}
}

// Match applies the predicates with AND (ALL) or OR (ANY).
// Without predicates every offer matches.
func (f Filter) Match(offer store.JobOffer) bool {
	if len(f.predicates) == 0 {
		return true
	}
	if f.mode == store.MatchModeAny {
		for _, p := range f.predicates {
			if p(offer) {
				return true
			}
		}
		return false
	}
	for _, p := range f.predicates {
		if !p(offer) {
			return false
		}
	}
	return true
}

func membership(values []string, field func(store.JobOffer) string) Predicate {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = normalize(v); v != "" {
			set[v] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return func(o store.JobOffer) bool {
		_, ok := set[normalize(field(o))]
		return ok
	}
}

func jobTitle(title string, match store.JobTitleMatch) Predicate {
	title = normalize(title)
	if title == "" {
		return nil
	}
	switch match {
	case store.JobTitleMatchExact:
		return func(o store.JobOffer) bool {
			return normalize(o.Title) == title
		}
	case store.JobTitleMatchContains:
		return func(o store.JobOffer) bool {
			return strings.Contains(normalize(o.Title), title)
		}
	default:
		return nil
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
