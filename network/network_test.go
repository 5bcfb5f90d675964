package network

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		Convey("Without a budget the transport should be the pooled one", func() {
			c := NewClient(time.Second, 0)
			So(c.Timeout, ShouldEqual, time.Second)
			_, ok := c.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
		})

		Convey("With a budget the transport should be paced", func() {
			c := NewClient(time.Second, 60)
			paced, ok := c.Transport.(*PacedTransport)
			So(ok, ShouldBeTrue)
			_, ok = paced.Unwrap().(*http.Transport)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestPacedTransport(t *testing.T) {
	Convey("Given a paced transport over a mock", t, func() {
		mock := httpmock.NewMockTransport()
		mock.RegisterResponder(http.MethodPost, "https://graphql.anilist.co",
			httpmock.NewStringResponder(http.StatusOK, `{"data":{}}`))

		paced := NewPacedTransport(mock, 1)
		client := &http.Client{Transport: paced}

		Convey("The first request should pass within the burst", func() {
			resp, err := client.Post("https://graphql.anilist.co", "application/json", nil)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(mock.GetTotalCallCount(), ShouldEqual, 1)
		})

		Convey("A rate of zero should not pace at all", func() {
			var unpaced *PacedTransport
			So(func() { unpaced = NewPacedTransport(mock, 0) }, ShouldNotPanic)

			client := &http.Client{Transport: unpaced}
			for range 3 {
				resp, err := client.Post("https://graphql.anilist.co", "application/json", nil)
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			}
			So(mock.GetTotalCallCount(), ShouldEqual, 3)
		})

		Convey("A second request should give up when its context ends first", func() {
			_, err := client.Post("https://graphql.anilist.co", "application/json", nil)
			So(err, ShouldBeNil)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "https://graphql.anilist.co", nil)

			_, err = client.Do(req)
			So(err, ShouldNotBeNil)
			So(mock.GetTotalCallCount(), ShouldEqual, 1)
		})
	})
}
