package loadgen

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okian/trophy/internal/domain/rank"
)

// verifyResults fails the run when any request failed or a profile was
// never answered.
func verifyResults(stats *Stats) error {
	if stats.CardsFailed > 0 || stats.QueriesFailed > 0 {
		return fmt.Errorf("%w: %d card and %d trophy requests failed", ErrVerification, stats.CardsFailed, stats.QueriesFailed)
	}
	if stats.CardsRendered != stats.ProfilesGenerated || stats.TrophyQueries != stats.ProfilesGenerated {
		return fmt.Errorf("%w: %d profiles, %d cards, %d queries", ErrVerification,
			stats.ProfilesGenerated, stats.CardsRendered, stats.TrophyQueries)
	}
	return nil
}

// Percentile returns the p-th latency percentile (0 < p <= 100).
func (s *Stats) Percentile(p float64) time.Duration {
	if len(s.Latencies) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Latencies)
	slices.Sort(sorted)
	idx := int(float64(len(sorted))*p/100+0.5) - 1
	idx = max(0, min(idx, len(sorted)-1))
	return sorted[idx]
}

// Report writes a human readable summary of the run.
func (s *Stats) Report(w io.Writer) {
	var perSecond float64
	if s.Duration > 0 {
		perSecond = float64(s.CardsRendered) / s.Duration.Seconds()
	}
	fmt.Fprintf(w, "profiles: %s  cards: %s  queries: %s  failed: %d\n",
		humanize.Comma(int64(s.ProfilesGenerated)), humanize.Comma(int64(s.CardsRendered)),
		humanize.Comma(int64(s.TrophyQueries)), s.CardsFailed+s.QueriesFailed)
	fmt.Fprintf(w, "duration: %s  cards/s: %s  p50: %s  p95: %s\n",
		s.Duration.Round(time.Millisecond), humanize.FtoaWithDigits(perSecond, 1),
		s.Percentile(50), s.Percentile(95))
	for t := rank.Secret; t <= rank.Unknown; t++ {
		if n := s.TierCounts[t.String()]; n > 0 {
			fmt.Fprintf(w, "  %-7s %s\n", t, humanize.Comma(int64(n)))
		}
	}
}
