package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/trophy/pkg/logger"
)

// Run executes a complete load run against cfg.BaseURL.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	if cfg.Profiles <= 0 || cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: profiles=%d workers=%d", ErrInvalidRun, cfg.Profiles, cfg.Workers)
	}

	log := logger.Get().Named("loadgen")
	stats := &Stats{StartTime: time.Now(), TierCounts: map[string]int{}}

	log.Info(ctx, "starting load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("profiles", cfg.Profiles),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
		logger.Any("seed", cfg.Seed))

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	if err := checkServiceHealth(ctx, client); err != nil {
		return nil, err
	}

	profiles := generateProfiles(cfg.Seed, cfg.Profiles)
	stats.ProfilesGenerated = len(profiles)

	submitProfiles(ctx, cfg, client, profiles, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	if err := verifyResults(stats); err != nil {
		return stats, err
	}
	log.Info(ctx, "load run completed",
		logger.Int("cards", stats.CardsRendered),
		logger.Int("queries", stats.TrophyQueries),
		logger.String("duration", stats.Duration.String()))
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *httpClient) error {
	resp, err := client.get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	_, _ = readResponseBody(resp)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}
