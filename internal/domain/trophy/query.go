package trophy

import "strings"

// Query carries the caller's title and rank selections for a card.
type Query struct {
	// Titles holds alias keywords to keep and "-Title" entries to drop.
	Titles []string
	// Ranks is passed to FilterByTier.
	Ranks []string
}

// Apply runs the card pipeline: drop locked secrets, apply title
// selections, apply rank selections, then sort by tier.
func (c Collection) Apply(q Query) Collection {
	out := c.FilterByHidden()

	if len(q.Titles) > 0 {
		var include []string
		for _, title := range q.Titles {
			if !strings.HasPrefix(title, "-") {
				include = append(include, title)
			}
		}
		if len(include) > 0 {
			out = out.FilterByAliases(include)
		}
		out = out.FilterByTitleDenylist(q.Titles)
	}

	if len(q.Ranks) > 0 {
		out = out.FilterByTier(q.Ranks)
	}

	return out.SortByTier()
}

// SplitList splits comma separated values, trimming blanks. Repeated
// parameters and comma lists are both accepted.
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
