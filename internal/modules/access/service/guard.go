package service

import (
	"strings"

	"github.com/samber/lo"
	"github.com/tomakado/containers/set"
)

// Wildcard as the only allow-list entry opens every database.
const Wildcard = "*"

var separators = strings.NewReplacer("-", "", "_", "", " ", "", "\t", "", "\n", "", "\r", "")

// Normalize strips separator characters so that visually equivalent
// identifiers (with or without dashes) compare equal.
func Normalize(id string) string {
	return separators.Replace(id)
}

// IsWildcard reports whether the allow-list opens every database. The check
// runs on trimmed entries, before separator stripping.
func IsWildcard(allowList []string) bool {
	entries := lo.FilterMap(allowList, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	return len(entries) == 1 && entries[0] == Wildcard
}

// IsAllowed checks a requested database identifier against the allow-list.
// An empty allow-list or the single wildcard entry allows everything.
func IsAllowed(requestedID string, allowList []string) bool {
	normalized := lo.FilterMap(allowList, func(s string, _ int) (string, bool) {
		s = Normalize(s)
		return s, s != ""
	})
	if len(normalized) == 0 || IsWildcard(allowList) {
		return true
	}

	return set.New(normalized...).Contains(Normalize(requestedID))
}

// Guard binds an allow-list loaded from configuration
type Guard struct {
	allowList []string
}

// New creates a new access guard
func New(allowList []string) *Guard {
	return &Guard{allowList: allowList}
}

// IsAllowed checks the requested identifier against the configured allow-list
func (g *Guard) IsAllowed(requestedID string) bool {
	return IsAllowed(requestedID, g.allowList)
}

// AllowList returns the normalized allow-list entries
func (g *Guard) AllowList() []string {
	return lo.FilterMap(g.allowList, func(s string, _ int) (string, bool) {
		s = Normalize(s)
		return s, s != ""
	})
}

// AllowsAny reports whether the guard runs in open mode
func (g *Guard) AllowsAny() bool {
	return IsWildcard(g.allowList)
}
