package trophy

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/okian/trophy/internal/domain/rank"
)

// Collection is an ordered sequence of trophies. Every transform returns a
// new Collection and leaves the receiver untouched.
type Collection struct {
	trophies []Trophy
}

// NewCollection wraps trophies in order. The slice is copied.
func NewCollection(trophies ...Trophy) Collection {
	return Collection{trophies: append([]Trophy(nil), trophies...)}
}

// Len returns the number of trophies.
func (c Collection) Len() int { return len(c.trophies) }

// Trophies returns a copy of the sequence.
func (c Collection) Trophies() []Trophy {
	return append([]Trophy(nil), c.trophies...)
}

// Views returns the serializable form of every trophy.
func (c Collection) Views() []View {
	return lo.Map(c.trophies, func(t Trophy, _ int) View { return t.View() })
}

func (c Collection) filter(keep func(t Trophy) bool) Collection {
	return Collection{trophies: lo.Filter(c.trophies, func(t Trophy, _ int) bool { return keep(t) })}
}

// FilterByHidden drops hidden trophies that are still locked.
func (c Collection) FilterByHidden() Collection {
	return c.filter(func(t Trophy) bool {
		return !t.hidden || t.tier != rank.Unknown
	})
}

// FilterByAliases keeps trophies answering to at least one allowed keyword.
func (c Collection) FilterByAliases(allow []string) Collection {
	return c.filter(func(t Trophy) bool {
		return lo.Some(allow, t.aliases)
	})
}

// FilterByTier keeps or drops trophies by tier name. When any entry contains
// a dash the call switches to exclusion mode and the first character of
// every entry is stripped, so ["-C", "xS"] excludes C and S. Otherwise only
// exact tier names in list are kept.
func (c Collection) FilterByTier(list []string) Collection {
	exclude := lo.ContainsBy(list, func(s string) bool { return strings.Contains(s, "-") })
	if exclude {
		names := lo.Map(list, func(s string, _ int) string { return stripFirst(s) })
		return c.filter(func(t Trophy) bool {
			return !lo.Contains(names, t.tier.String())
		})
	}
	return c.filter(func(t Trophy) bool {
		return lo.Contains(list, t.tier.String())
	})
}

// FilterByTitleDenylist drops trophies whose title matches a "-Title" entry.
// Entries without a leading dash are ignored.
func (c Collection) FilterByTitleDenylist(list []string) Collection {
	deny := lo.FilterMap(list, func(s string, _ int) (string, bool) {
		if !strings.HasPrefix(s, "-") {
			return "", false
		}
		return s[1:], true
	})
	if len(deny) == 0 {
		return c
	}
	return c.filter(func(t Trophy) bool {
		return !lo.Contains(deny, t.title)
	})
}

// SortByTier orders trophies most prestigious first, keeping the existing
// order among equal tiers.
func (c Collection) SortByTier() Collection {
	sorted := c.Trophies()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].tier.MorePrestigious(sorted[j].tier)
	})
	return Collection{trophies: sorted}
}

// stripFirst removes the first character (rune) of s.
func stripFirst(s string) string {
	for i := range s {
		if i > 0 {
			return s[i:]
		}
	}
	return ""
}
