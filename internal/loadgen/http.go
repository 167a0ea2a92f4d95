package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/trophy/internal/domain/rank"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
)

// httpClient wraps http.Client with the run's base URL.
type httpClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(baseURL string, timeout time.Duration) *httpClient {
	return &httpClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *httpClient) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

func (c *httpClient) post(ctx context.Context, path string, query url.Values, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(resp.Body)
}

// result is the outcome of one profile.
type result struct {
	latency time.Duration
	cardErr error
	tiers   []string
	listErr error
}

// submitProfiles sends every profile to /v1/card and /v1/trophies using a
// fixed worker pool.
func submitProfiles(ctx context.Context, cfg Config, client *httpClient, profiles []trophy.Metrics, stats *Stats) {
	log := logger.Get().Named("loadgen")
	log.Info(ctx, "submitting profiles", logger.Int("profiles", len(profiles)), logger.Int("workers", cfg.Workers))

	jobs := make(chan trophy.Metrics, cfg.Workers*2)
	results := make(chan result, cfg.Workers*2)

	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				results <- submitProfile(ctx, cfg, client, m)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, m := range profiles {
			select {
			case <-ctx.Done():
				return
			case jobs <- m:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.cardErr != nil {
			stats.CardsFailed++
			log.Debug(ctx, "card request failed", logger.Error(r.cardErr))
		} else {
			stats.CardsRendered++
			stats.Latencies = append(stats.Latencies, r.latency)
		}
		if r.listErr != nil {
			stats.QueriesFailed++
			log.Debug(ctx, "trophy query failed", logger.Error(r.listErr))
		} else {
			stats.TrophyQueries++
			for _, tier := range r.tiers {
				stats.TierCounts[tier]++
			}
		}
	}
}

func submitProfile(ctx context.Context, cfg Config, client *httpClient, m trophy.Metrics) result {
	var r result
	start := time.Now()
	r.cardErr = requestCard(ctx, cfg, client, m)
	r.latency = time.Since(start)
	r.tiers, r.listErr = requestTrophies(ctx, client, m)
	return r
}

// requestCard checks status, content type, render id and markup.
func requestCard(ctx context.Context, cfg Config, client *httpClient, m trophy.Metrics) error {
	resp, err := client.post(ctx, "/v1/card", url.Values{"theme": {cfg.Theme}}, m)
	if err != nil {
		return err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	switch {
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: card status %d: %s", ErrBadResponse, resp.StatusCode, body)
	case !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/svg+xml"):
		return fmt.Errorf("%w: card content type %q", ErrBadResponse, resp.Header.Get("Content-Type"))
	case !bytes.HasPrefix(body, []byte("<svg")):
		return fmt.Errorf("%w: card body is not svg", ErrBadResponse)
	}
	if _, err := uuid.Parse(resp.Header.Get("X-Render-ID")); err != nil {
		return fmt.Errorf("%w: render id: %w", ErrBadResponse, err)
	}
	return nil
}

type trophiesResponse struct {
	Count    int           `json:"count"`
	Trophies []trophy.View `json:"trophies"`
}

// requestTrophies returns the tiers of the visible trophies.
func requestTrophies(ctx context.Context, client *httpClient, m trophy.Metrics) ([]string, error) {
	resp, err := client.post(ctx, "/v1/trophies", nil, m)
	if err != nil {
		return nil, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: trophies status %d: %s", ErrBadResponse, resp.StatusCode, body)
	}
	var out trophiesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if out.Count != len(out.Trophies) {
		return nil, fmt.Errorf("%w: count %d for %d trophies", ErrBadResponse, out.Count, len(out.Trophies))
	}
	tiers := make([]string, len(out.Trophies))
	for i, t := range out.Trophies {
		if t.Hidden && t.Tier == rank.Unknown {
			return nil, fmt.Errorf("%w: locked secret %s returned", ErrVerification, t.Key)
		}
		if i > 0 && t.Tier.MorePrestigious(out.Trophies[i-1].Tier) {
			return nil, fmt.Errorf("%w: %s out of tier order", ErrVerification, t.Key)
		}
		tiers[i] = t.Tier.String()
	}
	return tiers, nil
}
