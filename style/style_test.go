package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers should keep the text", t, func() {
		So(Fg(Green)("ok"), ShouldContainSubstring, "ok")
		So(Bold("title"), ShouldContainSubstring, "title")
		So(Title("anime"), ShouldContainSubstring, "anime")
	})

	Convey("Hex with an empty colour should be the identity", t, func() {
		So(Hex("")("plain"), ShouldEqual, "plain")
	})
}
