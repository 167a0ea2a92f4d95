package trophy

import (
	"fmt"

	"github.com/samber/lo"
)

// Catalog is a validated trophy table ready to build collections.
// It is read-only and safe for concurrent use.
type Catalog struct {
	defs []Definition
}

// NewCatalog validates every definition. Rule sets are already checked by
// rank.NewRuleSet; this adds key, title, group and metric checks.
func NewCatalog(defs []Definition) (*Catalog, error) {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[d.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, d.Key)
		}
		seen[d.Key] = struct{}{}
	}
	return &Catalog{defs: append([]Definition(nil), defs...)}, nil
}

// Default returns the catalog built from Definitions.
func Default() (*Catalog, error) {
	return NewCatalog(Definitions())
}

// Definitions returns a copy of the catalog rows.
func (c *Catalog) Definitions() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Build resolves every trophy for m. Individual and community trophies are
// resolved first; secret trophies are resolved afterwards because the
// all-S-rank aggregates read phase-one tiers.
func (c *Catalog) Build(m Metrics) (Collection, error) {
	var individual, community, secrets []Trophy

	for _, d := range c.defs {
		if d.Group == GroupSecret {
			continue
		}
		score, _ := m.value(d.Metric)
		t, err := New(d, score)
		if err != nil {
			return Collection{}, fmt.Errorf("%w: %w", ErrBuild, err)
		}
		if d.Group == GroupIndividual {
			individual = append(individual, t)
		} else {
			community = append(community, t)
		}
	}

	agg := aggregate(individual, community)

	for _, d := range c.defs {
		if d.Group != GroupSecret {
			continue
		}
		score, ok := agg[d.Metric]
		if !ok {
			score, _ = m.value(d.Metric)
		}
		t, err := New(d, score)
		if err != nil {
			return Collection{}, fmt.Errorf("%w: %w", ErrBuild, err)
		}
		secrets = append(secrets, t)
	}

	all := make([]Trophy, 0, len(individual)+len(community)+len(secrets))
	all = append(all, individual...)
	all = append(all, community...)
	all = append(all, secrets...)
	return Collection{trophies: all}, nil
}

// aggregate computes the 0/1 all-S-rank flags. An empty group counts as
// all super.
func aggregate(individual, community []Trophy) map[Metric]float64 {
	allSuper := func(ts []Trophy) bool {
		return lo.EveryBy(ts, func(t Trophy) bool { return t.Tier().IsSuper() })
	}
	ind, com := allSuper(individual), allSuper(community)
	return map[Metric]float64{
		MetricAllSuperIndividual: flag(ind),
		MetricAllSuperCommunity:  flag(com),
		MetricMegaSuper:          flag(ind && com),
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
