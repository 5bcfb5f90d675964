package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("command", t, func() {
		const u = "https://anilist.co/anime/1"

		Convey("Should pick the platform opener", func() {
			cmd, ok := command("linux", u)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", u})

			cmd, ok = command("darwin", u)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", u})
		})

		Convey("Should refuse unknown platforms", func() {
			_, ok := command("plan9", u)
			So(ok, ShouldBeFalse)
		})
	})
}
