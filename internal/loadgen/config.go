// Package loadgen drives a running trophy server with generated profiles
// and checks every response it gets back.
package loadgen

import (
	"runtime"
	"time"
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Profiles int           // Number of profiles to generate
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Seed     uint64        // Generator seed; equal seeds yield equal profiles
	Theme    string        // Theme requested for every card
}

// DefaultConfig returns a config aimed at a local server.
func DefaultConfig() Config {
	return Config{
		BaseURL:  "http://localhost:9080",
		Profiles: 1000,
		Workers:  runtime.NumCPU() * 2,
		Timeout:  30 * time.Second,
		Seed:     1,
		Theme:    "default",
	}
}

// Stats holds run statistics.
type Stats struct {
	ProfilesGenerated int
	CardsRendered     int
	CardsFailed       int
	TrophyQueries     int
	QueriesFailed     int
	// TierCounts tallies every trophy returned by /v1/trophies by tier name.
	TierCounts map[string]int
	Latencies  []time.Duration
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}
