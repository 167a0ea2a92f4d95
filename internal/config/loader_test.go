package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/trophy/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.MaxColumn, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			setEnv("TROPHY_ADDR", ":8080")
			setEnv("TROPHY_THEME", "nord")
			setEnv("TROPHY_MAX_COLUMN", "-1")
			setEnv("TROPHY_MARGIN_W", "5")
			setEnv("TROPHY_NO_FRAME", "true")
			setEnv("TROPHY_LOG_FORMAT", "JSON")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Theme, convey.ShouldEqual, "nord")
				convey.So(cfg.MaxColumn, convey.ShouldEqual, -1)
				convey.So(cfg.MarginWidth, convey.ShouldEqual, 5)
				convey.So(cfg.NoFrame, convey.ShouldBeTrue)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := writeConfig(t, `
addr: ":9090"
theme: dracula
panel_size: 120
max_row: 2
shutdown_timeout: 3s
`)
			setEnv("TROPHY_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Theme, convey.ShouldEqual, "dracula")
				convey.So(cfg.PanelSize, convey.ShouldEqual, 120)
				convey.So(cfg.MaxRow, convey.ShouldEqual, 2)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 3*time.Second)
				convey.So(cfg.MaxColumn, convey.ShouldEqual, 8)
			})

			convey.Convey("And env vars take precedence over the file", func() {
				setEnv("TROPHY_THEME", "gruvbox")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Theme, convey.ShouldEqual, "gruvbox")
			})
		})

		convey.Convey("When the config file is missing", func() {
			setEnv("TROPHY_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then a load error is returned", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value fails validation", func() {
			setEnv("TROPHY_MAX_ROW", "0")

			_, err := config.Load(ctx)

			convey.Convey("Then an invalid config error is returned", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

var configEnvVars = []string{
	"TROPHY_CONFIG", "TROPHY_ADDR", "TROPHY_THEME", "TROPHY_MAX_COLUMN",
	"TROPHY_MARGIN_W", "TROPHY_NO_FRAME", "TROPHY_LOG_FORMAT", "TROPHY_MAX_ROW",
}

func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

func clearConfigEnvVars() {
	for _, key := range configEnvVars {
		_ = os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trophy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
