package trophy_test

import (
	"testing"

	"github.com/okian/trophy/internal/domain/rank"
	"github.com/okian/trophy/internal/domain/trophy"
	. "github.com/smartystreets/goconvey/convey"
)

func definition(key string) trophy.Definition {
	for _, d := range trophy.Definitions() {
		if d.Key == key {
			return d
		}
	}
	panic("no definition " + key)
}

func TestNew(t *testing.T) {
	Convey("Given the reviews definition", t, func() {
		def := definition("Reviews")

		Convey("When the score reaches S", func() {
			tr, err := trophy.New(def, 50)

			Convey("Then tier, messages and progress are resolved once", func() {
				So(err, ShouldBeNil)
				So(tr.Tier(), ShouldEqual, rank.S)
				So(tr.TopMessage(), ShouldEqual, "Super Reviewer")
				So(tr.BottomMessage(), ShouldEqual, "50pt")
				So(tr.Progress(), ShouldAlmostEqual, 5.0/12.0, 1e-9)
				So(tr.Unlocked(), ShouldBeTrue)
				rule, ok := tr.MatchedRule()
				So(ok, ShouldBeTrue)
				So(rule.MinScore, ShouldEqual, 45.0)
			})
		})

		Convey("When the score reaches nothing", func() {
			tr, err := trophy.New(def, 0)

			Convey("Then the trophy falls back to Unknown", func() {
				So(err, ShouldBeNil)
				So(tr.Tier(), ShouldEqual, rank.Unknown)
				So(tr.TopMessage(), ShouldEqual, "Unknown")
				So(tr.BottomMessage(), ShouldEqual, "0pt")
				So(tr.Progress(), ShouldEqual, 0.0)
				_, ok := tr.MatchedRule()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When aliases are read", func() {
			tr, _ := trophy.New(def, 1)
			aliases := tr.Aliases()
			aliases[0] = "changed"

			Convey("Then the trophy is not mutated", func() {
				So(tr.Aliases()[0], ShouldEqual, "Review")
			})
		})
	})

	Convey("Given the commits definition", t, func() {
		tr, err := trophy.New(definition("Commits"), 5000)

		Convey("Then the max tier reports full progress", func() {
			So(err, ShouldBeNil)
			So(tr.Tier(), ShouldEqual, rank.SSS)
			So(tr.Progress(), ShouldEqual, 1.0)
			So(tr.BottomMessage(), ShouldEqual, "5kpt")
		})
	})

	Convey("Given a secret definition", t, func() {
		def := definition("AncientUser")

		Convey("When unlocked", func() {
			tr, err := trophy.New(def, 1)
			So(err, ShouldBeNil)
			So(tr.Tier(), ShouldEqual, rank.Secret)
			So(tr.Hidden(), ShouldBeTrue)
			So(tr.TopMessage(), ShouldEqual, "Ancient User")
			So(tr.BottomMessage(), ShouldEqual, "Before 2010")
			So(tr.Progress(), ShouldEqual, 1.0)
		})

		Convey("When locked the bottom label stays fixed", func() {
			tr, err := trophy.New(def, 0)
			So(err, ShouldBeNil)
			So(tr.Tier(), ShouldEqual, rank.Unknown)
			So(tr.BottomMessage(), ShouldEqual, "Before 2010")
		})
	})
}

func TestAbridgeScore(t *testing.T) {
	Convey("Given scores of different magnitudes", t, func() {
		So(trophy.AbridgeScore(0), ShouldEqual, "0pt")
		So(trophy.AbridgeScore(0.4), ShouldEqual, "0pt")
		So(trophy.AbridgeScore(45), ShouldEqual, "45pt")
		So(trophy.AbridgeScore(999), ShouldEqual, "999pt")
		So(trophy.AbridgeScore(1234), ShouldEqual, "1.2kpt")
		So(trophy.AbridgeScore(1299), ShouldEqual, "1.2kpt")
		So(trophy.AbridgeScore(-2500), ShouldEqual, "-2.5kpt")
	})
}

func TestView(t *testing.T) {
	Convey("Given a resolved trophy", t, func() {
		tr, err := trophy.New(definition("Stars"), 250)
		So(err, ShouldBeNil)

		Convey("Then the view mirrors its state", func() {
			v := tr.View()
			So(v.Key, ShouldEqual, "Stars")
			So(v.Group, ShouldEqual, "individual")
			So(v.Tier, ShouldEqual, rank.S)
			So(v.TopMessage, ShouldEqual, "Stargazer")
			So(v.Aliases, ShouldResemble, []string{"Star", "Stars"})
		})
	})
}
