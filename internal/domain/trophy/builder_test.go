package trophy_test

import (
	"errors"
	"testing"

	"github.com/okian/trophy/internal/domain/rank"
	"github.com/okian/trophy/internal/domain/trophy"
	. "github.com/smartystreets/goconvey/convey"
)

// superMetrics puts every individual and community metric at S or above.
func superMetrics() trophy.Metrics {
	return trophy.Metrics{
		Stars:                 2500,
		Commits:               1500,
		Followers:             300,
		Issues:                250,
		PullRequests:          600,
		Repositories:          85,
		Reviews:               60,
		DurationDecidays:      45,
		StarsGiven:            300,
		Following:             200,
		ForkedRepos:           50,
		ExternalContributions: 600,
		Sponsoring:            25,
	}
}

func byKey(c trophy.Collection) map[string]trophy.Trophy {
	out := make(map[string]trophy.Trophy, c.Len())
	for _, t := range c.Trophies() {
		out[t.Key()] = t
	}
	return out
}

func TestCatalog_Build(t *testing.T) {
	Convey("Given the default catalog", t, func() {
		catalog, err := trophy.Default()
		So(err, ShouldBeNil)

		Convey("When building from empty metrics", func() {
			c, err := catalog.Build(trophy.Metrics{})

			Convey("Then every trophy is present in group order", func() {
				So(err, ShouldBeNil)
				So(c.Len(), ShouldEqual, 22)
				ts := c.Trophies()
				So(ts[0].Key(), ShouldEqual, "Stars")
				So(ts[7].Key(), ShouldEqual, "Experience")
				So(ts[8].Key(), ShouldEqual, "StarsGiven")
				So(ts[13].Key(), ShouldEqual, "AllSuperRankIndividual")
				for i := 1; i < len(ts); i++ {
					So(int(ts[i-1].Group()), ShouldBeLessThanOrEqualTo, int(ts[i].Group()))
				}
			})

			Convey("Then nothing is unlocked", func() {
				for _, tr := range c.Trophies() {
					So(tr.Tier(), ShouldEqual, rank.Unknown)
				}
			})
		})

		Convey("When every individual trophy is S rank or better", func() {
			m := superMetrics()
			m.Sponsoring = 0
			c, err := catalog.Build(m)
			So(err, ShouldBeNil)
			got := byKey(c)

			Convey("Then the individual aggregate unlocks", func() {
				So(got["AllSuperRankIndividual"].Score(), ShouldEqual, 1.0)
				So(got["AllSuperRankIndividual"].Tier(), ShouldEqual, rank.Secret)
			})

			Convey("And the community and mega aggregates stay locked", func() {
				So(got["AllSuperRankCommunity"].Tier(), ShouldEqual, rank.Unknown)
				So(got["MegaSuperRank"].Tier(), ShouldEqual, rank.Unknown)
			})
		})

		Convey("When one individual trophy is only AA", func() {
			m := superMetrics()
			m.Reviews = 25
			c, err := catalog.Build(m)
			So(err, ShouldBeNil)
			got := byKey(c)

			Convey("Then the individual aggregate is 0 and hidden", func() {
				So(got["Reviews"].Tier(), ShouldEqual, rank.AA)
				So(got["AllSuperRankIndividual"].Score(), ShouldEqual, 0.0)
				So(got["AllSuperRankIndividual"].Tier(), ShouldEqual, rank.Unknown)
				_, visible := byKey(c.FilterByHidden())["AllSuperRankIndividual"]
				So(visible, ShouldBeFalse)
			})

			Convey("And the community aggregate is unaffected", func() {
				So(got["AllSuperRankCommunity"].Tier(), ShouldEqual, rank.Secret)
				So(got["MegaSuperRank"].Tier(), ShouldEqual, rank.Unknown)
			})
		})

		Convey("When both groups are all S rank", func() {
			c, err := catalog.Build(superMetrics())
			So(err, ShouldBeNil)
			got := byKey(c)

			Convey("Then the mega trophy unlocks with its own messages", func() {
				mega := got["MegaSuperRank"]
				So(mega.Tier(), ShouldEqual, rank.Secret)
				So(mega.TopMessage(), ShouldEqual, "Mega S Rank")
				So(mega.BottomMessage(), ShouldEqual, "All S Rank")
				So(got["AllSuperRankIndividual"].TopMessage(), ShouldNotEqual, got["AllSuperRankCommunity"].TopMessage())
			})
		})

		Convey("When raw secret flags are set", func() {
			c, err := catalog.Build(trophy.Metrics{
				Languages:      12,
				DurationYears:  9,
				AncientAccount: 1,
				OGAccount:      0,
				Joined2020:     1,
				Organizations:  3,
			})
			So(err, ShouldBeNil)
			got := byKey(c)

			Convey("Then each secret compares against its own threshold", func() {
				So(got["MultiLanguage"].Tier(), ShouldEqual, rank.Secret)
				So(got["LongTimeUser"].Tier(), ShouldEqual, rank.Unknown)
				So(got["AncientUser"].Tier(), ShouldEqual, rank.Secret)
				So(got["OGUser"].Tier(), ShouldEqual, rank.Unknown)
				So(got["Joined2020"].Tier(), ShouldEqual, rank.Secret)
				So(got["Organizations"].Tier(), ShouldEqual, rank.Secret)
				So(got["Organizations"].BottomMessage(), ShouldEqual, "3+ Orgs")
			})
		})

		Convey("When building twice", func() {
			a, _ := catalog.Build(superMetrics())
			b, _ := catalog.Build(superMetrics())
			So(a.Views(), ShouldResemble, b.Views())
		})
	})
}

func TestNewCatalog(t *testing.T) {
	Convey("Given catalog definitions", t, func() {
		valid := trophy.Definition{
			Key:    "Stars",
			Title:  "Stars",
			Metric: trophy.MetricStars,
			Rules:  rank.MustRuleSet(rank.Rule{Tier: rank.C, Label: "First", MinScore: 1}),
		}

		Convey("When a key is repeated", func() {
			_, err := trophy.NewCatalog([]trophy.Definition{valid, valid})
			So(errors.Is(err, trophy.ErrDuplicateKey), ShouldBeTrue)
		})

		Convey("When the rule set is empty", func() {
			bad := valid
			bad.Rules = rank.RuleSet{}
			_, err := trophy.NewCatalog([]trophy.Definition{bad})
			So(errors.Is(err, trophy.ErrInvalidDefinition), ShouldBeTrue)
			So(errors.Is(err, rank.ErrEmptyRuleSet), ShouldBeTrue)
		})

		Convey("When the title is missing", func() {
			bad := valid
			bad.Title = " "
			_, err := trophy.NewCatalog([]trophy.Definition{bad})
			So(errors.Is(err, trophy.ErrInvalidDefinition), ShouldBeTrue)
		})

		Convey("When the metric is unknown", func() {
			bad := valid
			bad.Metric = "karma"
			_, err := trophy.NewCatalog([]trophy.Definition{bad})
			So(errors.Is(err, trophy.ErrUnknownMetric), ShouldBeTrue)
		})

		Convey("When a derived metric is used outside the secret group", func() {
			bad := valid
			bad.Metric = trophy.MetricMegaSuper
			_, err := trophy.NewCatalog([]trophy.Definition{bad})
			So(errors.Is(err, trophy.ErrInvalidDefinition), ShouldBeTrue)
		})

		Convey("When the definitions are valid", func() {
			c, err := trophy.NewCatalog([]trophy.Definition{valid})
			So(err, ShouldBeNil)
			So(len(c.Definitions()), ShouldEqual, 1)
		})
	})
}
