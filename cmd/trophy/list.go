package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/trophy"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		sel    selection
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resolved trophies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			m, err := loadMetrics(sel.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := c.newService(ctx)
			if err != nil {
				return err
			}
			col, err := svc.Trophies(ctx, m, sel.query())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(col.Views())
			}
			return writeTable(cmd, col)
		},
	}
	sel.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func writeTable(cmd *cobra.Command, col trophy.Collection) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tTITLE\tRANK\tSCORE\tNEXT")
	for _, t := range col.Trophies() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.Tier(), t.Title(), t.TopMessage(), humanize.Comma(int64(t.Score())), percent(t.Progress()))
	}
	unlocked := lo.CountBy(col.Trophies(), func(t trophy.Trophy) bool { return t.Unlocked() })
	fmt.Fprintf(tw, "\n%d of %d unlocked\n", unlocked, col.Len())
	return tw.Flush()
}

func percent(f float64) string {
	return humanize.FtoaWithDigits(f*100, 1) + "%"
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List card themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(render.ThemeNames(), "\n"))
			return err
		},
	}
}
