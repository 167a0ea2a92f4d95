package rank_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/trophy/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTier(t *testing.T) {
	Convey("Given the tier enumeration", t, func() {
		Convey("Then order runs from SECRET to UNKNOWN", func() {
			order := rank.Order()
			So(order[0], ShouldEqual, rank.Secret)
			So(order[len(order)-1], ShouldEqual, rank.Unknown)
			for i := 1; i < len(order); i++ {
				So(order[i-1].MorePrestigious(order[i]), ShouldBeTrue)
			}
		})

		Convey("Then only S, SS and SSS are super ranks", func() {
			for _, tier := range rank.Order() {
				want := tier == rank.S || tier == rank.SS || tier == rank.SSS
				So(tier.IsSuper(), ShouldEqual, want)
			}
		})

		Convey("Then names round-trip through Parse", func() {
			for _, tier := range rank.Order() {
				got, ok := rank.Parse(tier.String())
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, tier)
			}
			_, ok := rank.Parse("s")
			So(ok, ShouldBeFalse)
		})

		Convey("Then JSON uses tier names", func() {
			b, err := json.Marshal(map[string]rank.Tier{"tier": rank.AAA})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"tier":"AAA"}`)

			var decoded struct {
				Tier rank.Tier `json:"tier"`
			}
			So(json.Unmarshal([]byte(`{"tier":"ss"}`), &decoded), ShouldBeNil)
			So(decoded.Tier, ShouldEqual, rank.SS)
			So(json.Unmarshal([]byte(`{"tier":"Z"}`), &decoded), ShouldNotBeNil)
		})

		Convey("Then out-of-range values are invalid", func() {
			So(rank.Tier(42).Valid(), ShouldBeFalse)
			So(rank.Tier(42).String(), ShouldEqual, "INVALID")
		})
	})
}
