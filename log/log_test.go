package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/anikit/filesystem"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/where"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/cfg")

		Reset(func() {
			viper.Reset()
			enabled = false
			logrus.SetOutput(os.Stderr)
			logrus.SetLevel(logrus.InfoLevel)
		})

		Convey("When logs.write is false", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Nothing should be enabled or created", func() {
				So(Enabled(), ShouldBeFalse)
				exists, _ := filesystem.API().DirExists("/cfg/logs")
				So(exists, ShouldBeFalse)
			})
		})

		Convey("When logs.write is true", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)

			Debugf("dispatch %d", 42)
			WithFields(logrus.Fields{"kind": "not_found"}).Warn("classified")

			Convey("Lines should land in today's file", func() {
				path := filepath.Join("/cfg/logs", time.Now().Format("2006-01-02")+".log")
				data, err := afero.ReadFile(filesystem.API(), path)
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "dispatch 42")
				So(string(data), ShouldContainSubstring, "kind=not_found")
			})
		})

		Convey("When the level is unknown it should fall back to info", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "loud")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
