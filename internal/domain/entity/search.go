package entity

import (
	"strings"

	"boral/internal/errors"
)

// SearchScope selects which collections a search covers.
type SearchScope string

const (
	SearchScopeAll      SearchScope = "all"
	SearchScopeStores   SearchScope = "stores"
	SearchScopeServices SearchScope = "services"
	SearchScopeProducts SearchScope = "products"
)

// ErrUnknownSearchScope is returned by ParseSearchScope for values outside the enumeration.
var ErrUnknownSearchScope = errors.New("unknown search scope")

// ParseSearchScope converts a raw scope string into a SearchScope. An empty value means all.
func ParseSearchScope(raw string) (SearchScope, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return SearchScopeAll, nil
	}

	scope := SearchScope(raw)
	switch scope {
	case SearchScopeAll, SearchScopeStores, SearchScopeServices, SearchScopeProducts:
		return scope, nil
	}

	return "", errors.Wrapf(ErrUnknownSearchScope, "%q", raw)
}

// Includes reports whether the scope covers target.
func (s SearchScope) Includes(target SearchScope) bool {
	return s == SearchScopeAll || s == target
}
