package version

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/filesystem"
	"github.com/anisan-cli/anikit/key"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order by major, minor, then patch", func() {
			for _, tc := range []struct {
				a, b string
				want int
			}{
				{"1.0.0", "0.9.9", 1},
				{"0.3.0", "0.3.1", -1},
				{"v1.2.3", "1.2.3", 0},
				{"2.0.0-rc1", "1.9.0", 1},
			} {
				got, err := Compare(tc.a, tc.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, tc.want)
			}
		})

		Convey("Should reject garbage", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		mock := httpmock.NewMockTransport()
		mock.RegisterResponder(http.MethodGet, ReleasesURL,
			httpmock.NewStringResponder(http.StatusOK, `{"tag_name":"v99.0.0"}`))

		original := httpClient
		httpClient = &http.Client{Transport: mock}
		Reset(func() { httpClient = original })

		viper.Set(key.CliVersionCheck, true)
		Reset(func() { viper.Set(key.CliVersionCheck, nil) })

		Convey("It should strip the v, cache the answer and announce it", func() {
			latest, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "99.0.0")

			again, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(again, ShouldEqual, "99.0.0")
			So(mock.GetTotalCallCount(), ShouldEqual, 1)

			var out bytes.Buffer
			Notify(context.Background(), &out)
			So(out.String(), ShouldContainSubstring, "99.0.0")
			So(out.String(), ShouldContainSubstring, constant.Version)
		})
	})
}
