package loadgen

import (
	"math/rand/v2"

	"github.com/okian/trophy/internal/domain/trophy"
)

// performer scales a profile's counters. Most profiles are casual, a few
// are heavy enough to unlock the upper tiers.
type performer struct {
	weight int
	scale  float64
}

var performers = []performer{ //nolint:gochecknoglobals // fixed distribution
	{weight: 50, scale: 0.05},
	{weight: 30, scale: 0.3},
	{weight: 15, scale: 1},
	{weight: 5, scale: 3},
}

// generator produces reproducible profiles from a seed.
type generator struct {
	rng   *rand.Rand
	total int
}

func newGenerator(seed uint64) *generator {
	total := 0
	for _, p := range performers {
		total += p.weight
	}
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), total: total}
}

func (g *generator) pick() performer {
	n := g.rng.IntN(g.total)
	for _, p := range performers {
		if n < p.weight {
			return p
		}
		n -= p.weight
	}
	return performers[len(performers)-1]
}

// count draws a counter around mean*scale.
func (g *generator) count(mean, scale float64) float64 {
	return float64(int(g.rng.ExpFloat64() * mean * scale))
}

func (g *generator) flag(p float64) float64 {
	if g.rng.Float64() < p {
		return 1
	}
	return 0
}

// profile generates one metrics value.
func (g *generator) profile() trophy.Metrics {
	p := g.pick()
	years := float64(g.rng.IntN(18))
	return trophy.Metrics{
		Stars:                 g.count(400, p.scale),
		Commits:               g.count(1500, p.scale),
		Followers:             g.count(150, p.scale),
		Issues:                g.count(120, p.scale),
		PullRequests:          g.count(150, p.scale),
		Repositories:          g.count(40, p.scale),
		Reviews:               g.count(25, p.scale),
		DurationDecidays:      years * 36.5,
		StarsGiven:            g.count(300, p.scale),
		Following:             g.count(80, p.scale),
		ForkedRepos:           g.count(20, p.scale),
		ExternalContributions: g.count(150, p.scale),
		Sponsoring:            g.count(5, p.scale),
		Languages:             float64(1 + g.rng.IntN(15)),
		DurationYears:         years,
		AncientAccount:        boolToFloat(years >= 16),
		OGAccount:             boolToFloat(years >= 17),
		Joined2020:            g.flag(0.05),
		Organizations:         float64(g.rng.IntN(6)),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// generateProfiles creates n profiles.
func generateProfiles(seed uint64, n int) []trophy.Metrics {
	g := newGenerator(seed)
	out := make([]trophy.Metrics, n)
	for i := range out {
		out[i] = g.profile()
	}
	return out
}
