package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
)

// selection holds the flags shared by render and list.
type selection struct {
	file   string
	titles []string
	ranks  []string
}

func (s *selection) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", `metrics YAML or JSON file ("-" for stdin)`)
	cmd.Flags().StringSliceVar(&s.titles, "title", nil, `alias keywords to keep; "-Title" drops a title`)
	cmd.Flags().StringSliceVar(&s.ranks, "rank", nil, `tiers to keep; any "-" entry excludes every listed tier`)
	_ = cmd.MarkFlagRequired("file")
}

func (s *selection) query() trophy.Query {
	return trophy.Query{Titles: trophy.SplitList(s.titles...), Ranks: trophy.SplitList(s.ranks...)}
}

func newRenderCmd(c *cli) *cobra.Command {
	var (
		sel    selection
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a trophy card as SVG",
		Example: `  trophy render -f metrics.yaml > card.svg
  trophy render -f metrics.yaml --theme nord --column -1 --rank -C,-B`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			m, err := loadMetrics(sel.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts, err := overlayCardFlags(cmd, cardDefaults(c.cfg))
			if err != nil {
				return err
			}

			svc, err := c.newService(ctx)
			if err != nil {
				return err
			}
			card, err := svc.RenderCard(ctx, m, sel.query(), opts)
			if err != nil {
				return err
			}
			c.log.Debug(ctx, "card written", logger.String("render_id", card.ID), logger.Int("panels", card.Trophies))

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), card.SVG)
				return err
			}
			return os.WriteFile(output, []byte(card.SVG), 0o644) //nolint:gosec // card output is public
		},
	}

	sel.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the card to a file instead of stdout")
	cmd.Flags().String("theme", "", "card theme")
	cmd.Flags().Int("column", 0, "panels per row; -1 puts every trophy on one row")
	cmd.Flags().Int("row", 0, "maximum rows")
	cmd.Flags().Int("margin-w", 0, "horizontal gap between panels")
	cmd.Flags().Int("margin-h", 0, "vertical gap between panels")
	cmd.Flags().Bool("no-bg", false, "transparent panel background")
	cmd.Flags().Bool("no-frame", false, "hide panel frames")
	return cmd
}

// overlayCardFlags applies explicitly set flags on top of opts.
func overlayCardFlags(cmd *cobra.Command, opts render.CardOptions) (render.CardOptions, error) {
	flags := cmd.Flags()
	if flags.Changed("theme") {
		name, _ := flags.GetString("theme")
		theme, ok := render.LookupTheme(name)
		if !ok {
			return opts, fmt.Errorf("unknown theme %q", name)
		}
		opts.Theme = theme
	}

	ints := []struct {
		name string
		dst  *int
		ok   func(int) bool
	}{
		{"column", &opts.MaxColumn, func(n int) bool { return n == -1 || n > 0 }},
		{"row", &opts.MaxRow, func(n int) bool { return n > 0 }},
		{"margin-w", &opts.MarginWidth, func(n int) bool { return n >= 0 }},
		{"margin-h", &opts.MarginHeight, func(n int) bool { return n >= 0 }},
	}
	for _, f := range ints {
		if !flags.Changed(f.name) {
			continue
		}
		n, _ := flags.GetInt(f.name)
		if !f.ok(n) {
			return opts, fmt.Errorf("invalid --%s %d", f.name, n)
		}
		*f.dst = n
	}

	if flags.Changed("no-bg") {
		opts.NoBackground, _ = flags.GetBool("no-bg")
	}
	if flags.Changed("no-frame") {
		opts.NoFrame, _ = flags.GetBool("no-frame")
	}
	return opts, nil
}
