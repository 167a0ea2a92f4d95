package trophy

import (
	"fmt"
	"strings"

	"github.com/okian/trophy/internal/domain/rank"
)

// Definition is one row of the trophy catalog.
type Definition struct {
	Key     string
	Title   string
	Aliases []string
	Group   Group
	Metric  Metric
	Rules   rank.RuleSet
	Hidden  bool
	// BottomMessage replaces the abbreviated score when set.
	BottomMessage string
}

func (d Definition) validate() error {
	switch {
	case strings.TrimSpace(d.Key) == "":
		return fmt.Errorf("%w: empty key", ErrInvalidDefinition)
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: %s has no title", ErrInvalidDefinition, d.Key)
	case d.Rules.Len() == 0:
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.Key, rank.ErrEmptyRuleSet)
	case d.Group < GroupIndividual || d.Group > GroupSecret:
		return fmt.Errorf("%w: %s has group %d", ErrInvalidDefinition, d.Key, int(d.Group))
	}
	if d.Metric.derived() {
		if d.Group != GroupSecret {
			return fmt.Errorf("%w: %s uses derived metric %s outside the secret group", ErrInvalidDefinition, d.Key, d.Metric)
		}
		return nil
	}
	if _, ok := (Metrics{}).value(d.Metric); !ok {
		return fmt.Errorf("%w: %s reads %q", ErrUnknownMetric, d.Key, d.Metric)
	}
	return nil
}

// secret builds a hidden single-threshold definition.
func secret(key string, aliases []string, metric Metric, label string, minScore float64, bottom string) Definition {
	return Definition{
		Key:           key,
		Title:         key,
		Aliases:       aliases,
		Group:         GroupSecret,
		Metric:        metric,
		Rules:         rank.MustRuleSet(rank.Rule{Tier: rank.Secret, Label: label, MinScore: minScore}),
		Hidden:        true,
		BottomMessage: bottom,
	}
}

// ladder builds the eight-step SSS..C rule set. Labels and thresholds are
// given most prestigious first.
func ladder(labels [8]string, scores [8]float64) rank.RuleSet {
	tiers := [8]rank.Tier{rank.SSS, rank.SS, rank.S, rank.AAA, rank.AA, rank.A, rank.B, rank.C}
	rules := make([]rank.Rule, len(tiers))
	for i, tier := range tiers {
		rules[i] = rank.Rule{Tier: tier, Label: labels[i], MinScore: scores[i]}
	}
	return rank.MustRuleSet(rules...)
}
