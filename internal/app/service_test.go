package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	service "github.com/okian/trophy/internal/app"
	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/rank"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type fakeRecorder struct {
	mu       sync.Mutex
	resolved map[string]int
	built    int
	failed   int
	size     int
	panels   []int
	latency  int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{resolved: map[string]int{}}
}

func (f *fakeRecorder) RecordTrophyResolved(group, tier string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved[group+"/"+tier]++
	return nil
}

func (f *fakeRecorder) RecordCollectionBuilt() { f.built++ }
func (f *fakeRecorder) RecordBuildError()      { f.failed++ }
func (f *fakeRecorder) UpdateCatalogSize(n int) {
	f.size = n
}
func (f *fakeRecorder) RecordCardRendered(panels int) { f.panels = append(f.panels, panels) }
func (f *fakeRecorder) RecordRenderLatency(float64)   { f.latency++ }

func newService(rec *fakeRecorder, opts ...service.Option) *service.Service {
	base := []service.Option{
		service.WithLogger(logger.Nop()),
		service.WithRecorder(rec),
		service.WithIDGenerator(func() string { return "render-1" }),
	}
	svc, err := service.New(context.Background(), append(base, opts...)...)
	So(err, ShouldBeNil)
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a service with the built-in catalog", t, func() {
		rec := newFakeRecorder()
		svc := newService(rec)

		Convey("Then the catalog size is published", func() {
			So(rec.size, ShouldEqual, 22)
			So(svc.GetStats()["definitions"], ShouldEqual, 22)
		})

		Convey("Then the card defaults are the renderer defaults", func() {
			So(svc.CardDefaults().MaxColumn, ShouldEqual, render.DefaultMaxColumn)
			So(svc.CardDefaults().PanelSize, ShouldEqual, render.DefaultPanelSize)
		})
	})

	Convey("Given a custom catalog", t, func() {
		cat, err := trophy.NewCatalog([]trophy.Definition{{
			Key: "Stars", Title: "Stars", Aliases: []string{"Stars"},
			Group: trophy.GroupIndividual, Metric: trophy.MetricStars,
			Rules: rank.MustRuleSet(rank.Rule{Tier: rank.S, Label: "Star", MinScore: 10}),
		}})
		So(err, ShouldBeNil)
		rec := newFakeRecorder()
		svc := newService(rec, service.WithCatalog(cat))

		Convey("When trophies are built", func() {
			c, err := svc.Build(context.Background(), trophy.Metrics{Stars: 12})

			Convey("Then only its definitions are resolved", func() {
				So(err, ShouldBeNil)
				So(c.Len(), ShouldEqual, 1)
				So(rec.resolved["individual/S"], ShouldEqual, 1)
			})
		})
	})
}

func TestService_Trophies(t *testing.T) {
	Convey("Given a service", t, func() {
		rec := newFakeRecorder()
		svc := newService(rec)
		ctx := context.Background()

		Convey("When a profile has no activity", func() {
			c, err := svc.Trophies(ctx, trophy.Metrics{}, trophy.Query{})

			Convey("Then locked secrets are hidden and every ladder trophy stays", func() {
				So(err, ShouldBeNil)
				So(c.Len(), ShouldEqual, 13)
				So(rec.built, ShouldEqual, 1)
				So(rec.resolved["individual/UNKNOWN"], ShouldEqual, 8)
			})
		})

		Convey("When a query selects titles", func() {
			c, err := svc.Trophies(ctx, trophy.Metrics{Commits: 5000, Stars: 1}, trophy.Query{Titles: []string{"Commit", "Star"}})

			Convey("Then the result is filtered and sorted by tier", func() {
				So(err, ShouldBeNil)
				So(c.Len(), ShouldEqual, 2)
				So(c.Trophies()[0].Key(), ShouldEqual, "Commits")
				So(c.Trophies()[0].Tier(), ShouldEqual, rank.SSS)
				So(c.Trophies()[1].Key(), ShouldEqual, "Stars")
			})
		})
	})
}

func TestService_RenderCard(t *testing.T) {
	Convey("Given a service", t, func() {
		rec := newFakeRecorder()
		svc := newService(rec)

		Convey("When a card is rendered with a two column layout", func() {
			opts := svc.CardDefaults()
			opts.MaxColumn = 2
			opts.MaxRow = 2
			card, err := svc.RenderCard(context.Background(), trophy.Metrics{}, trophy.Query{}, opts)

			Convey("Then the grid truncates and the card is identified", func() {
				So(err, ShouldBeNil)
				So(card.ID, ShouldEqual, "render-1")
				So(card.Trophies, ShouldEqual, 4)
				So(strings.HasPrefix(card.SVG, "<svg"), ShouldBeTrue)
				So(rec.panels, ShouldResemble, []int{4})
				So(rec.latency, ShouldEqual, 1)
				So(svc.GetStats()["cards"], ShouldEqual, int64(1))
			})
		})
	})
}
