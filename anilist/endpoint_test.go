package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jarcoal/httpmock"
	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"
)

// graphql answers with reply(variables) and records every request's variables.
func graphql(seen *[]map[string]any, reply func(vars map[string]any) (int, string)) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}

		var env struct {
			Variables map[string]any `json:"variables"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}

		if seen != nil {
			*seen = append(*seen, env.Variables)
		}

		status, payload := reply(env.Variables)
		return httpmock.NewStringResponse(status, payload), nil
	}
}

func ok(payload string) func(map[string]any) (int, string) {
	return func(map[string]any) (int, string) {
		return http.StatusOK, payload
	}
}

func TestFetch(t *testing.T) {
	Convey("Given a client on a mock transport", t, func() {
		client, mock := newTestClient()
		ctx := context.Background()
		var seen []map[string]any

		Convey("A media lookup should decode the named subtree", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"Media":{
				"id": 1,
				"title": {"romaji": "Kaubòi Bibappu", "english": "Cowboy Bebop"},
				"episodes": 26,
				"season": "SPRING",
				"startDate": {"year": 1998, "month": 4, "day": 3},
				"studios": {"nodes": [{"id": 14, "name": "Sunrise", "isAnimationStudio": true}]}
			}}}`)))

			anime, err := client.Anime().ByID(ctx, 1)
			So(err, ShouldBeNil)
			So(anime.Name(), ShouldEqual, "Cowboy Bebop")
			So(anime.Episodes, ShouldEqual, 26)
			So(anime.Season, ShouldEqual, SeasonSpring)
			So(anime.StartDate.String(), ShouldEqual, "1998-04-03")
			So(anime.Studios.Nodes, ShouldHaveLength, 1)
			So(anime.NextAiringEpisode, ShouldBeNil)
			So(seen[0]["id"], ShouldEqual, float64(1))
		})

		Convey("Paged lookups should pass page and perPage through", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"Page":{"media":[{"id":1},{"id":2}]}}}`)))

			list, err := client.Manga().Popular(ctx, 3, 10)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 2)
			So(seen[0]["page"], ShouldEqual, float64(3))
			So(seen[0]["perPage"], ShouldEqual, float64(10))
			So(seen[0]["sort"], ShouldResemble, []any{"POPULARITY_DESC"})

			Convey("Non-positive paging should use the defaults", func() {
				_, err := client.Manga().Popular(ctx, 0, -1)
				So(err, ShouldBeNil)
				So(seen[1]["page"], ShouldEqual, float64(1))
				So(seen[1]["perPage"], ShouldEqual, float64(defaultPerPage))
			})
		})

		Convey("A null subtree should be a decode error", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, ok(`{"data":{"Character":null}}`)))

			_, err := client.Character().ByID(ctx, 7)
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})

		Convey("API errors should surface unchanged", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, func(map[string]any) (int, string) {
				return http.StatusNotFound, `{"errors":[{"message":"Not Found.","status":404}]}`
			}))

			_, err := client.Staff().ByID(ctx, 7)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Delete should report the deleted flag", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"DeleteActivity":{"deleted":true}}}`)))

			deleted, err := client.Authenticated("t").Activity().Delete(ctx, 9)
			So(err, ShouldBeNil)
			So(deleted, ShouldBeTrue)
		})

		Convey("UnreadCount should read the viewer counter", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, ok(`{"data":{"Viewer":{"unreadNotificationCount":4}}}`)))

			n, err := client.Notification().UnreadCount(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 4)
		})

		Convey("MarkRead should reset the count while listing", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"Page":{"notifications":[]}}}`)))

			So(client.Notification().MarkRead(ctx), ShouldBeNil)
			So(seen[0]["reset"], ShouldEqual, true)
		})

		Convey("ToggleFavourite should reject unknown kinds locally", func() {
			err := client.User().ToggleFavourite(ctx, FavouriteKind("bogus"), 1)
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
			So(mock.GetTotalCallCount(), ShouldEqual, 0)
		})

		Convey("UpdateStatus should only send the known parts of the date", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"SaveMediaListEntry":{"id":5,"status":"COMPLETED"}}}`)))

			entry, err := client.User().UpdateStatus(ctx, 5, ListCompleted, FuzzyDate{Year: 2024, Month: 3})
			So(err, ShouldBeNil)
			So(entry.Status, ShouldEqual, ListCompleted)
			So(seen[0]["completedAt"], ShouldResemble, map[string]any{"year": float64(2024), "month": float64(3)})
		})

		Convey("ViewerAnimeList should flatten every list", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, func(vars map[string]any) (int, string) {
				if _, ok := vars["userId"]; !ok {
					return http.StatusOK, `{"data":{"Viewer":{"id":42,"name":"me"}}}`
				}
				return http.StatusOK, `{"data":{"MediaListCollection":{"lists":[
					{"name":"Watching","entries":[{"id":1},{"id":2}]},
					{"name":"Custom","isCustomList":true,"entries":[{"id":3}]}
				]}}}`
			}))

			entries, err := client.Authenticated("t").User().ViewerAnimeList(ctx, ListCurrent)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
			So(seen[1]["userId"], ShouldEqual, float64(42))
			So(seen[1]["status"], ShouldEqual, "CURRENT")
			So(seen[1]["type"], ShouldEqual, "ANIME")
		})
	})
}

func TestFetchRetry(t *testing.T) {
	Convey("Given a client that retries once without delay", t, func() {
		client, mock := newTestClient(WithRetryPolicy(RetryPolicy{MaxRetries: 1}))

		Convey("A burst limit inside a 200 should be retried", func() {
			calls := 0
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, func(map[string]any) (int, string) {
				calls++
				if calls == 1 {
					return http.StatusOK, `{"errors":[{"message":"Too Many Requests."}],"data":null}`
				}
				return http.StatusOK, `{"data":{"Studio":{"id":14,"name":"Sunrise"}}}`
			}))

			studio, err := client.Studio().ByID(context.Background(), 14)
			So(err, ShouldBeNil)
			So(studio.Name, ShouldEqual, "Sunrise")
			So(mock.GetTotalCallCount(), ShouldEqual, 2)
		})
	})
}

func TestAiring(t *testing.T) {
	Convey("Given a fake clock at noon", t, func() {
		noon := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
		clock = clockwork.NewFakeClockAt(noon)
		Reset(func() {
			clock = clockwork.NewRealClock()
		})

		client, mock := newTestClient()
		ctx := context.Background()
		var seen []map[string]any

		Convey("Today should span the UTC day", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"Page":{"airingSchedules":[]}}}`)))

			_, err := client.Airing().Today(ctx, 1, 5)
			So(err, ShouldBeNil)

			midnight := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
			So(seen[0]["airingAtGreater"], ShouldEqual, float64(midnight.Unix()))
			So(seen[0]["airingAtLesser"], ShouldEqual, float64(midnight.Add(24*time.Hour).Unix()))
		})

		Convey("Upcoming should start now", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, ok(`{"data":{"Page":{"airingSchedules":[]}}}`)))

			_, err := client.Airing().Upcoming(ctx, 1, 5)
			So(err, ShouldBeNil)
			So(seen[0]["airingAtGreater"], ShouldEqual, float64(noon.Unix()))
			So(seen[0]["sort"], ShouldResemble, []any{"TIME"})
		})

		Convey("NextEpisode should be None when nothing is scheduled", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, ok(`{"data":{"Page":{"airingSchedules":[]}}}`)))

			next, err := client.Airing().NextEpisode(ctx, 1)
			So(err, ShouldBeNil)
			So(next.IsAbsent(), ShouldBeTrue)
		})

		Convey("NextEpisode should return the first schedule", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, ok(`{"data":{"Page":{"airingSchedules":[{"id":3,"episode":12,"airingAt":1712800000}]}}}`)))

			next, err := client.Airing().NextEpisode(ctx, 1)
			So(err, ShouldBeNil)
			So(next.MustGet().Episode, ShouldEqual, 12)
		})
	})
}

func TestByIDs(t *testing.T) {
	Convey("Given ids one of which is missing", t, func() {
		client, mock := newTestClient()
		mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(nil, func(vars map[string]any) (int, string) {
			switch vars["id"] {
			case float64(2):
				return http.StatusNotFound, ""
			case float64(1):
				return http.StatusOK, `{"data":{"Media":{"id":1}}}`
			default:
				return http.StatusOK, `{"data":{"Media":{"id":3}}}`
			}
		}))

		Convey("The others should survive in order", func() {
			animes, err := client.Anime().ByIDs(context.Background(), []int{1, 2, 3})
			So(animes, ShouldHaveLength, 3)
			So(animes[0].ID, ShouldEqual, 1)
			So(animes[1], ShouldBeNil)
			So(animes[2].ID, ShouldEqual, 3)

			var merr *multierror.Error
			So(errors.As(err, &merr), ShouldBeTrue)
			So(merr.Errors, ShouldHaveLength, 1)
			So(errors.Is(merr.Errors[0], ErrNotFound), ShouldBeTrue)
		})

		Convey("No ids should be no work", func() {
			animes, err := client.Anime().ByIDs(context.Background(), nil)
			So(err, ShouldBeNil)
			So(animes, ShouldBeEmpty)
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Given a search backend", t, func() {
		client, mock := newTestClient()
		var seen []map[string]any

		mock.RegisterResponder(http.MethodPost, testEndpoint, graphql(&seen, func(vars map[string]any) (int, string) {
			if strings.Count(vars["search"].(string), " ") > 2 {
				return http.StatusOK, `{"data":{"Page":{"media":[]}}}`
			}
			return http.StatusOK, `{"data":{"Page":{"media":[
				{"id":1,"title":{"romaji":"Shingeki no Kyojin"}},
				{"id":2,"title":{"english":"Attack on Titan"}},
				{"id":3,"title":{"english":"Attack on Titan Season 2"}}
			]}}}`
		}))

		Convey("The nearest title should win", func() {
			anime, err := client.Anime().Closest(context.Background(), "  Attack on Titan ")
			So(err, ShouldBeNil)
			So(anime.ID, ShouldEqual, 2)
			So(seen, ShouldHaveLength, 1)
		})

		Convey("Empty searches should drop trailing words", func() {
			anime, err := client.Anime().Closest(context.Background(), "attack on titan final chapters")
			So(err, ShouldBeNil)
			So(anime, ShouldNotBeNil)
			So(seen, ShouldHaveLength, 3)
			So(seen[2]["search"], ShouldEqual, "attack on titan")
		})

		Convey("Nothing found should name the searched title", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint,
				httpmock.NewStringResponder(http.StatusOK, `{"data":{"Page":{"media":[]}}}`))

			_, err := client.Anime().Closest(context.Background(), "Cowboy Bebop")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "cowboy bebop")
		})

		Convey("An empty name should be rejected", func() {
			_, err := client.Anime().Closest(context.Background(), " ")
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
		})
	})
}
