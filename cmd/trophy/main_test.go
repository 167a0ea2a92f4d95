package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/trophy/internal/domain/trophy"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleMetrics = `
commits: 5000
stars: 2000
followers: 12
reviews: 50
`

func writeMetrics(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write metrics: %v", err)
	}
	return path
}

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(sampleMetrics))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	Convey("Given a metrics file", t, func() {
		path := writeMetrics(t, sampleMetrics)

		Convey("When a one row card is rendered", func() {
			out, err := run("render", "-f", path, "--column", "2", "--row", "1", "--theme", "dracula")

			Convey("Then two panels are written to stdout", func() {
				So(err, ShouldBeNil)
				So(strings.HasPrefix(out, `<svg width="220" height="110"`), ShouldBeTrue)
				So(strings.Count(out, "<svg "), ShouldEqual, 3)
			})
		})

		Convey("When the card is written to a file", func() {
			dst := filepath.Join(t.TempDir(), "card.svg")
			_, err := run("render", "-f", path, "-o", dst, "--title", "Commit")

			Convey("Then the file holds the card", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(dst)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "God Committer")
				So(strings.Count(string(data), "<svg "), ShouldEqual, 2)
			})
		})

		Convey("When metrics come from stdin", func() {
			out, err := run("render", "-f", "-", "--rank", "SSS")

			Convey("Then only the SSS panels are drawn", func() {
				So(err, ShouldBeNil)
				So(strings.Count(out, "<svg "), ShouldEqual, 3)
			})
		})

		Convey("When an unknown theme is named", func() {
			_, err := run("render", "-f", path, "--theme", "neon")
			So(err, ShouldNotBeNil)
		})

		Convey("When a layout flag is out of range", func() {
			_, err := run("render", "-f", path, "--column", "0")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given no metrics file flag", t, func() {
		_, err := run("render")
		So(err, ShouldNotBeNil)
	})
}

func TestListCommand(t *testing.T) {
	Convey("Given a metrics file", t, func() {
		path := writeMetrics(t, sampleMetrics)

		Convey("When trophies are listed as JSON", func() {
			out, err := run("list", "-f", path, "--json", "--rank", "SSS,S")

			Convey("Then they are sorted by tier", func() {
				So(err, ShouldBeNil)
				var views []trophy.View
				So(json.Unmarshal([]byte(out), &views), ShouldBeNil)
				So(len(views), ShouldEqual, 3)
				So(views[0].Key, ShouldEqual, "Stars")
				So(views[1].Key, ShouldEqual, "Commits")
				So(views[2].Key, ShouldEqual, "Reviews")
			})
		})

		Convey("When trophies are listed as a table", func() {
			out, err := run("list", "-f", path)

			Convey("Then every visible trophy has a row", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "TIER")
				So(out, ShouldContainSubstring, "5,000")
				So(out, ShouldContainSubstring, "4 of 13 unlocked")
			})
		})
	})
}

func TestThemesCommand(t *testing.T) {
	Convey("When themes are listed", t, func() {
		out, err := run("themes")
		So(err, ShouldBeNil)
		So(strings.Fields(out), ShouldResemble, []string{"default", "dracula", "flat", "gruvbox", "nord", "onedark"})
	})
}

func TestLoadMetrics(t *testing.T) {
	Convey("Given a metrics document with an unknown field", t, func() {
		path := writeMetrics(t, "karma: 3\n")

		Convey("Then decoding fails", func() {
			_, err := loadMetrics(path, nil)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given an empty metrics document", t, func() {
		path := writeMetrics(t, "")

		Convey("Then a zero profile is returned", func() {
			m, err := loadMetrics(path, nil)
			So(err, ShouldBeNil)
			So(m, ShouldResemble, trophy.Metrics{})
		})
	})

	Convey("Given a JSON metrics document", t, func() {
		path := writeMetrics(t, `{"commits": 12, "joined_2020": 1}`)

		Convey("Then it decodes as YAML", func() {
			m, err := loadMetrics(path, nil)
			So(err, ShouldBeNil)
			So(m.Commits, ShouldEqual, 12.0)
			So(m.Joined2020, ShouldEqual, 1.0)
		})
	})
}
