package where

import (
	"path/filepath"
	"testing"

	"github.com/anisan-cli/anikit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWhere(t *testing.T) {
	Convey("Given an in-memory filesystem and a custom config path", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(EnvConfigPath, "/tmp/anikit-test")

		Convey("Config should honour the override and create it", func() {
			So(Config(), ShouldEqual, "/tmp/anikit-test")
			exists, err := filesystem.API().DirExists("/tmp/anikit-test")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Logs and Scripts should live under Config", func() {
			So(Logs(), ShouldEqual, filepath.Join("/tmp/anikit-test", "logs"))
			So(Scripts(), ShouldEqual, filepath.Join("/tmp/anikit-test", "scripts"))
		})

		Convey("ConfigFile should point at anikit.toml", func() {
			So(ConfigFile(), ShouldEqual, filepath.Join("/tmp/anikit-test", "anikit.toml"))
		})
	})
}
