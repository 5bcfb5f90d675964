package anilist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMediaTitle(t *testing.T) {
	Convey("Name", t, func() {
		Convey("Should prefer English", func() {
			So(MediaTitle{Romaji: "Shingeki no Kyojin", English: "Attack on Titan"}.Name(), ShouldEqual, "Attack on Titan")
		})

		Convey("Should fall back to romaji then native", func() {
			So(MediaTitle{Romaji: "Mushishi", Native: "蟲師"}.Name(), ShouldEqual, "Mushishi")
			So(MediaTitle{Native: "蟲師"}.Name(), ShouldEqual, "蟲師")
		})
	})
}

func TestFuzzyDate(t *testing.T) {
	Convey("FuzzyDate", t, func() {
		Convey("Should print only the known parts", func() {
			So(FuzzyDate{}.String(), ShouldBeEmpty)
			So(FuzzyDate{Year: 2006}.String(), ShouldEqual, "2006")
			So(FuzzyDate{Year: 2006, Month: 4}.String(), ShouldEqual, "2006-04")
			So(FuzzyDate{Year: 2006, Month: 4, Day: 4}.String(), ShouldEqual, "2006-04-04")
		})

		Convey("Input should leave unknown parts out", func() {
			So(FuzzyDate{Year: 2020, Day: 1}.input(), ShouldResemble, map[string]int{"year": 2020, "day": 1})
			So(FuzzyDate{}.IsZero(), ShouldBeTrue)
		})
	})
}
