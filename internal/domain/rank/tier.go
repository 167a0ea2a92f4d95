// Package rank maps scalar scores to achievement tiers through ordered
// threshold rules and measures progress toward the next tier.
package rank

import "strings"

// Tier is an achievement level. Lower ordinal means more prestigious.
type Tier int

// Tiers in prestige order, most prestigious first.
const (
	Secret Tier = iota
	SSS
	SS
	S
	AAA
	AA
	A
	B
	C
	Unknown
)

var tierNames = [...]string{
	Secret:  "SECRET",
	SSS:     "SSS",
	SS:      "SS",
	S:       "S",
	AAA:     "AAA",
	AA:      "AA",
	A:       "A",
	B:       "B",
	C:       "C",
	Unknown: "UNKNOWN",
}

// Order lists every tier from most to least prestigious.
func Order() []Tier {
	return []Tier{Secret, SSS, SS, S, AAA, AA, A, B, C, Unknown}
}

// String returns the canonical tier name, e.g. "AAA" or "UNKNOWN".
func (t Tier) String() string {
	if !t.Valid() {
		return "INVALID"
	}
	return tierNames[t]
}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool {
	return t >= Secret && t <= Unknown
}

// MorePrestigious reports whether t ranks above o.
func (t Tier) MorePrestigious(o Tier) bool {
	return t < o
}

// IsSuper reports whether the tier name begins with the letter S
// (S, SS or SSS). SECRET is not a super rank.
func (t Tier) IsSuper() bool {
	return t == S || t == SS || t == SSS
}

// Parse looks up a tier by its canonical name. Matching is exact.
func Parse(name string) (Tier, bool) {
	for i, n := range tierNames {
		if n == name {
			return Tier(i), true
		}
	}
	return Unknown, false
}

// MarshalText encodes the tier as its name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name, case-insensitively.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, ok := Parse(strings.ToUpper(strings.TrimSpace(string(b))))
	if !ok {
		return ErrInvalidTier
	}
	*t = parsed
	return nil
}
