package markup

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestText(t *testing.T) {
	Convey("Text", t, func() {
		Convey("Should turn breaks into newlines and drop tags", func() {
			in := "Spike and Jet.<br><br>\n<i>(Source: Wikipedia)</i>"
			So(Text(in), ShouldEqual, "Spike and Jet.\n\n(Source: Wikipedia)")
		})

		Convey("Should unescape entities", func() {
			So(Text("Tom &amp; Jerry&#039;s"), ShouldEqual, "Tom & Jerry's")
		})

		Convey("Should bullet list items", func() {
			So(Text("<ul><li>one</li><li>two</li></ul>"), ShouldEqual, "• one\n• two")
		})

		Convey("Should keep spoiler text without markers", func() {
			So(Text("He ~!dies!~ at the end"), ShouldEqual, "He dies at the end")
		})

		Convey("Should collapse runs of blank lines", func() {
			So(Text("a<br><br><br><br>b"), ShouldEqual, "a\n\nb")
		})

		Convey("Empty input should stay empty", func() {
			So(Text(""), ShouldBeEmpty)
		})
	})
}

func TestWrap(t *testing.T) {
	Convey("Wrap", t, func() {
		Convey("Should break on words", func() {
			So(Wrap("the quick brown fox", 10), ShouldEqual, "the quick\nbrown fox")
		})

		Convey("Should hard-break long words", func() {
			for _, line := range strings.Split(Wrap("abcdefghijklmnop", 5), "\n") {
				So(len(line), ShouldBeLessThanOrEqualTo, 5)
			}
		})

		Convey("A non-positive width should do nothing", func() {
			So(Wrap("abc def", 0), ShouldEqual, "abc def")
		})
	})
}

func TestTruncate(t *testing.T) {
	Convey("Truncate", t, func() {
		So(Truncate("short", 10), ShouldEqual, "short")
		So(Truncate("Cowboy Bebop", 7), ShouldEqual, "Cowboy…")
		So(Truncate("anything", 0), ShouldBeEmpty)
	})
}

func TestWords(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "result", "results"), ShouldEqual, "1 result")
		So(Quantify(0, "result", "results"), ShouldEqual, "0 results")
	})

	Convey("Capitalize", t, func() {
		So(Capitalize("NOT_YET_RELEASED"), ShouldEqual, "Not yet released")
		So(Capitalize("TV"), ShouldEqual, "Tv")
		So(Capitalize(""), ShouldEqual, "")
	})

	Convey("Width", t, func() {
		So(Width(), ShouldBeBetweenOrEqual, 1, 100)
	})
}
