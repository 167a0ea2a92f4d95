package rank

import (
	"fmt"
	"sort"
)

// Rule is one threshold: reaching MinScore earns Tier, shown with Label.
type Rule struct {
	Tier     Tier    `json:"tier" yaml:"tier"`
	Label    string  `json:"label" yaml:"label"`
	MinScore float64 `json:"min_score" yaml:"min_score"`
}

// RuleSet is a validated, prestige-ordered collection of rules for a single
// metric. The zero value has no rules and resolves every score to Unknown.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet validates rules and returns them ordered most prestigious first.
// Input order does not matter.
func NewRuleSet(rules ...Rule) (RuleSet, error) {
	if len(rules) == 0 {
		return RuleSet{}, ErrEmptyRuleSet
	}

	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tier < sorted[j].Tier
	})

	for i, r := range sorted {
		if !r.Tier.Valid() || r.Tier == Unknown {
			return RuleSet{}, fmt.Errorf("%w: %d", ErrInvalidTier, int(r.Tier))
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		switch {
		case prev.Tier == r.Tier:
			return RuleSet{}, fmt.Errorf("%w: %s", ErrDuplicateTier, r.Tier)
		case prev.Tier+1 != r.Tier:
			return RuleSet{}, fmt.Errorf("%w: %s followed by %s", ErrTierGap, prev.Tier, r.Tier)
		case prev.MinScore < r.MinScore:
			return RuleSet{}, fmt.Errorf("%w: %s needs %g but %s needs %g",
				ErrNonMonotonic, prev.Tier, prev.MinScore, r.Tier, r.MinScore)
		}
	}

	return RuleSet{rules: sorted}, nil
}

// MustRuleSet is NewRuleSet for static tables; it panics on invalid input.
func MustRuleSet(rules ...Rule) RuleSet {
	rs, err := NewRuleSet(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Rules returns a copy of the rules, most prestigious first.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules.
func (rs RuleSet) Len() int { return len(rs.rules) }

// Top returns the most prestigious tier in the set, or Unknown if empty.
func (rs RuleSet) Top() Tier {
	if len(rs.rules) == 0 {
		return Unknown
	}
	return rs.rules[0].Tier
}

// Resolve returns the most prestigious rule whose MinScore is reached.
// Equal thresholds resolve to the more prestigious tier since it is checked
// first. ok is false when no rule matches.
func (rs RuleSet) Resolve(score float64) (rule Rule, ok bool) {
	for _, r := range rs.rules {
		if score >= r.MinScore {
			return r, true
		}
	}
	return Rule{Tier: Unknown}, false
}

// Progress returns the fraction of the way from the tier's threshold to the
// next more prestigious one. Unknown yields 0 and the top tier yields 1;
// any other result lies in [0, 1).
func (rs RuleSet) Progress(tier Tier, score float64) (float64, error) {
	if tier == Unknown {
		return 0, nil
	}

	idx := rs.index(tier)
	if idx < 0 {
		return 0, fmt.Errorf("%w: tier %s not in rule set", ErrCorruptRuleSet, tier)
	}
	if idx == 0 {
		return 1, nil
	}

	cur, next := rs.rules[idx], rs.rules[idx-1]
	if next.Tier+1 != cur.Tier {
		return 0, fmt.Errorf("%w: no rule one step above %s", ErrCorruptRuleSet, tier)
	}
	distance := next.MinScore - cur.MinScore
	if distance <= 0 {
		return 0, fmt.Errorf("%w: %s and %s share threshold %g", ErrCorruptRuleSet, next.Tier, cur.Tier, cur.MinScore)
	}

	fraction := (score - cur.MinScore) / distance
	if fraction < 0 || fraction >= 1 {
		return 0, fmt.Errorf("%w: score %g outside %s band [%g, %g)", ErrCorruptRuleSet, score, tier, cur.MinScore, next.MinScore)
	}
	return fraction, nil
}

func (rs RuleSet) index(tier Tier) int {
	for i, r := range rs.rules {
		if r.Tier == tier {
			return i
		}
	}
	return -1
}
