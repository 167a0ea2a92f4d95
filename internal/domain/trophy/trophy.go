// Package trophy turns profile metrics into resolved trophy badges and
// exposes the filter and sort pipeline used before rendering.
package trophy

import (
	"fmt"

	"github.com/okian/trophy/internal/domain/rank"
)

// Group partitions trophies for derived-trophy aggregation.
type Group int

// Trophy groups, in flattening order.
const (
	GroupIndividual Group = iota
	GroupCommunity
	GroupSecret
)

func (g Group) String() string {
	switch g {
	case GroupIndividual:
		return "individual"
	case GroupCommunity:
		return "community"
	case GroupSecret:
		return "secret"
	}
	return "unknown"
}

const unknownMessage = "Unknown"

// Trophy is one resolved badge. It is immutable once built.
type Trophy struct {
	key      string
	title    string
	group    Group
	score    float64
	rules    rank.RuleSet
	tier     rank.Tier
	matched  rank.Rule
	hasMatch bool
	progress float64
	top      string
	bottom   string
	aliases  []string
	hidden   bool
}

// New resolves score against the definition's rule set.
func New(def Definition, score float64) (Trophy, error) {
	t := Trophy{
		key:     def.Key,
		title:   def.Title,
		group:   def.Group,
		score:   score,
		rules:   def.Rules,
		hidden:  def.Hidden,
		aliases: append([]string(nil), def.Aliases...),
		top:     unknownMessage,
		bottom:  AbridgeScore(score),
	}
	if def.BottomMessage != "" {
		t.bottom = def.BottomMessage
	}

	t.matched, t.hasMatch = def.Rules.Resolve(score)
	t.tier = t.matched.Tier
	if t.hasMatch {
		t.top = t.matched.Label
	}

	p, err := def.Rules.Progress(t.tier, score)
	if err != nil {
		return Trophy{}, fmt.Errorf("trophy %s: %w", def.Key, err)
	}
	t.progress = p
	return t, nil
}

// Key returns the catalog key.
func (t Trophy) Key() string { return t.key }

// Title returns the display title, also used for deny-list filtering.
func (t Trophy) Title() string { return t.title }

// Group returns the partition the trophy was built in.
func (t Trophy) Group() Group { return t.group }

// Score returns the raw score the trophy was resolved from.
func (t Trophy) Score() float64 { return t.score }

// Rules returns the rule set the trophy was resolved against.
func (t Trophy) Rules() rank.RuleSet { return t.rules }

// Tier returns the resolved tier.
func (t Trophy) Tier() rank.Tier { return t.tier }

// MatchedRule returns the rule that set the tier, if any.
func (t Trophy) MatchedRule() (rank.Rule, bool) { return t.matched, t.hasMatch }

// Progress returns the fraction toward the next tier, in [0, 1].
func (t Trophy) Progress() float64 { return t.progress }

// TopMessage returns the flavor text line.
func (t Trophy) TopMessage() string { return t.top }

// BottomMessage returns the abbreviated score or fixed label.
func (t Trophy) BottomMessage() string { return t.bottom }

// Aliases returns a copy of the keywords the trophy answers to.
func (t Trophy) Aliases() []string { return append([]string(nil), t.aliases...) }

// Hidden reports whether the trophy stays invisible until unlocked.
func (t Trophy) Hidden() bool { return t.hidden }

// Unlocked reports whether any threshold was reached.
func (t Trophy) Unlocked() bool { return t.tier != rank.Unknown }

// View is the serializable form of a trophy.
type View struct {
	Key           string    `json:"key"`
	Title         string    `json:"title"`
	Group         string    `json:"group"`
	Tier          rank.Tier `json:"tier"`
	Score         float64   `json:"score"`
	Progress      float64   `json:"progress"`
	TopMessage    string    `json:"top_message"`
	BottomMessage string    `json:"bottom_message"`
	Aliases       []string  `json:"aliases"`
	Hidden        bool      `json:"hidden"`
}

// View returns the serializable form of t.
func (t Trophy) View() View {
	return View{
		Key:           t.key,
		Title:         t.title,
		Group:         t.group.String(),
		Tier:          t.tier,
		Score:         t.score,
		Progress:      t.progress,
		TopMessage:    t.top,
		BottomMessage: t.bottom,
		Aliases:       t.Aliases(),
		Hidden:        t.hidden,
	}
}
