package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okian/trophy/internal/adapters/render"
	service "github.com/okian/trophy/internal/app"
	"github.com/okian/trophy/internal/config"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
)

// cli carries state shared by subcommands after the root pre-run.
type cli struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "trophy",
		Short:         "Profile trophy engine",
		Long:          "trophy resolves profile counters into ranked trophy badges and renders them as SVG cards.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	root.AddCommand(newServeCmd(c))
	root.AddCommand(newRenderCmd(c))
	root.AddCommand(newListCmd(c))
	root.AddCommand(newThemesCmd())
	root.AddCommand(newBenchCmd())
	return root
}

// init loads configuration (defaults -> optional file -> env) and sets up logging.
func (c *cli) init(ctx context.Context, logOut io.Writer) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithOutput(logOut)); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	c.cfg = cfg
	c.log = logger.Named("cli")
	return nil
}

// cardDefaults maps configuration onto renderer options.
func cardDefaults(cfg *config.Config) render.CardOptions {
	theme, _ := render.LookupTheme(cfg.Theme)
	return render.CardOptions{
		Theme:        theme,
		MaxColumn:    cfg.MaxColumn,
		MaxRow:       cfg.MaxRow,
		MarginWidth:  cfg.MarginWidth,
		MarginHeight: cfg.MarginHeight,
		PanelSize:    cfg.PanelSize,
		NoBackground: cfg.NoBackground,
		NoFrame:      cfg.NoFrame,
	}
}

func (c *cli) newService(ctx context.Context) (*service.Service, error) {
	return service.New(ctx,
		service.WithLogger(logger.Named("service")),
		service.WithCardDefaults(cardDefaults(c.cfg)),
	)
}

// loadMetrics decodes a YAML (or JSON) metrics document. "-" reads stdin.
func loadMetrics(path string, stdin io.Reader) (trophy.Metrics, error) {
	var m trophy.Metrics

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return m, fmt.Errorf("open metrics: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return m, fmt.Errorf("decode metrics %s: %w", path, err)
	}
	return m, nil
}
