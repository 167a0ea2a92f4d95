package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/trophy/internal/loadgen"
)

func newBenchCmd() *cobra.Command {
	cfg := loadgen.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Drive a running server with generated profiles",
		Example: `  trophy bench --profiles 10000 --workers 16
  trophy bench --url http://localhost:8080 --theme nord`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := loadgen.Run(cmd.Context(), cfg)
			if stats != nil {
				stats.Report(cmd.OutOrStdout())
			}
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the service")
	cmd.Flags().IntVar(&cfg.Profiles, "profiles", cfg.Profiles, "number of profiles to submit")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "number of concurrent workers")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "profile generator seed")
	cmd.Flags().StringVar(&cfg.Theme, "theme", cfg.Theme, "theme requested for every card")
	return cmd
}
