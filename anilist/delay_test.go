package anilist

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSuggestedDelay(t *testing.T) {
	Convey("SuggestedDelay", t, func() {
		Convey("Nothing remaining should wait out the window", func() {
			So(SuggestedDelay(0, 42*time.Second), ShouldEqual, 42*time.Second)
			So(SuggestedDelay(0, -time.Second), ShouldEqual, 0)
		})

		Convey("Fewer remaining requests should space them wider", func() {
			So(SuggestedDelay(9, time.Minute), ShouldEqual, 2*time.Second)
			So(SuggestedDelay(10, time.Minute), ShouldEqual, time.Second)
			So(SuggestedDelay(29, time.Minute), ShouldEqual, time.Second)
			So(SuggestedDelay(30, time.Minute), ShouldEqual, 500*time.Millisecond)
		})

		Convey("A rate limit error should measure the window to its reset", func() {
			now := time.Unix(1000, 0)
			So(NewRateLimitError(90, 0, 1030, 0).SuggestedDelay(now), ShouldEqual, 30*time.Second)
			So(NewRateLimitError(90, 50, 1030, 0).SuggestedDelay(now), ShouldEqual, 500*time.Millisecond)
		})

		Convey("Other kinds should not suggest anything", func() {
			So((&Error{Kind: KindBurstLimit}).SuggestedDelay(time.Now()), ShouldEqual, 0)
		})
	})
}

func TestPause(t *testing.T) {
	Convey("Pause", t, func() {
		Convey("A zero duration should return at once", func() {
			So(Pause(context.Background(), 0), ShouldBeNil)
		})

		Convey("A done context should win", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			So(Pause(ctx, 0), ShouldEqual, context.Canceled)
			So(Pause(ctx, time.Hour), ShouldEqual, context.Canceled)
		})

		Convey("The clock should release it", func() {
			fake := useFakeClock()
			done := make(chan error, 1)
			go func() { done <- Pause(context.Background(), time.Minute) }()

			fake.BlockUntil(1)
			fake.Advance(time.Minute)
			So(<-done, ShouldBeNil)
		})
	})
}
