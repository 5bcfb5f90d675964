package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/anisan-cli/anikit/constant"
	"github.com/google/go-cmp/cmp"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

const testEndpoint = "https://anilist.test/graphql"

func newTestClient(opts ...Option) (*Client, *httpmock.MockTransport) {
	mock := httpmock.NewMockTransport()
	opts = append([]Option{
		WithHTTPClient(&http.Client{Transport: mock}),
		WithEndpoint(testEndpoint),
	}, opts...)
	return New(opts...), mock
}

func respond(status int, body string, header http.Header) httpmock.Responder {
	return func(*http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(status, body)
		for name, values := range header {
			for _, v := range values {
				resp.Header.Add(name, v)
			}
		}
		return resp, nil
	}
}

func rateHeaders() http.Header {
	h := http.Header{}
	h.Set(HeaderRateLimitLimit, "90")
	h.Set(HeaderRateLimitRemaining, "0")
	h.Set(HeaderRateLimitReset, "1700000000")
	h.Set(HeaderRetryAfter, "30")
	return h
}

func TestClassify(t *testing.T) {
	Convey("Given finished HTTP exchanges", t, func() {
		Convey("401, 403 and 404 should ignore the body", func() {
			for status, kind := range map[int]Kind{
				http.StatusUnauthorized: KindAuthenticationRequired,
				http.StatusForbidden:    KindAccessDenied,
				http.StatusNotFound:     KindNotFound,
			} {
				_, err := classify(status, http.Header{}, []byte(`{"errors":[{"message":"Too Many Requests"}]}`), nil)
				So(KindOf(err), ShouldEqual, kind)
			}
		})

		Convey("400 should carry the body as message", func() {
			_, err := classify(http.StatusBadRequest, nil, []byte("bad variables"), nil)
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
			So(err.(*Error).Message, ShouldEqual, "bad variables")
		})

		Convey("400 with an unreadable body should fall back", func() {
			_, err := classify(http.StatusBadRequest, nil, nil, io.ErrUnexpectedEOF)
			So(err.(*Error).Message, ShouldEqual, "Bad Request")
		})

		Convey("5xx should be a server error with the status", func() {
			_, err := classify(http.StatusBadGateway, nil, []byte("upstream"), nil)
			apiErr := err.(*Error)
			So(apiErr.Kind, ShouldEqual, KindServerError)
			So(apiErr.Status, ShouldEqual, http.StatusBadGateway)
			So(apiErr.Message, ShouldEqual, "upstream")
		})

		Convey("Other statuses should be server errors too", func() {
			_, err := classify(http.StatusTeapot, nil, nil, io.ErrUnexpectedEOF)
			apiErr := err.(*Error)
			So(apiErr.Kind, ShouldEqual, KindServerError)
			So(apiErr.Status, ShouldEqual, http.StatusTeapot)
			So(apiErr.Message, ShouldEqual, "Unknown Error")
		})

		Convey("429 with all four headers should be detailed", func() {
			_, err := classify(http.StatusTooManyRequests, rateHeaders(), nil, nil)
			So(err, ShouldResemble, NewRateLimitError(90, 0, 1700000000, 30))
		})

		Convey("429 missing any one header should be simple", func() {
			for _, name := range []string{HeaderRateLimitLimit, HeaderRateLimitRemaining, HeaderRateLimitReset, HeaderRetryAfter} {
				h := rateHeaders()
				h.Del(name)
				_, err := classify(http.StatusTooManyRequests, h, nil, nil)
				So(KindOf(err), ShouldEqual, KindRateLimitSimple)
			}
		})

		Convey("429 with malformed headers should use the fallbacks", func() {
			h := http.Header{}
			h.Set(HeaderRateLimitLimit, "lots")
			h.Set(HeaderRateLimitRemaining, "-1")
			h.Set(HeaderRateLimitReset, "soon")
			h.Set(HeaderRetryAfter, "")
			_, err := classify(http.StatusTooManyRequests, h, nil, nil)
			So(err, ShouldResemble, NewRateLimitError(90, 0, 0, 60))
		})

		Convey("429 with a reset beyond int64 should use the fallback", func() {
			h := rateHeaders()
			h.Set(HeaderRateLimitReset, "18446744073709551615")
			_, err := classify(http.StatusTooManyRequests, h, nil, nil)
			var apiErr *Error
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.ResetAt, ShouldEqual, int64(0))
			So(apiErr.RetryAfter, ShouldEqual, 30)
		})

		Convey("200 should return the data subtree", func() {
			data, err := classify(http.StatusOK, nil, []byte(`{"data": {"Media": {"id": 5}}}`), nil)
			So(err, ShouldBeNil)

			var got, want any
			So(json.Unmarshal(data, &got), ShouldBeNil)
			So(json.Unmarshal([]byte(`{"Media":{"id":5}}`), &want), ShouldBeNil)
			So(cmp.Diff(want, got), ShouldBeEmpty)
		})

		Convey("200 without data should return null", func() {
			data, err := classify(http.StatusOK, nil, []byte(`{}`), nil)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "null")
		})

		Convey("200 with a broken body should be a decode error", func() {
			_, err := classify(http.StatusOK, nil, []byte(`{"data":`), nil)
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})

		Convey("200 with an unreadable body should be a network error", func() {
			_, err := classify(http.StatusOK, nil, nil, io.ErrUnexpectedEOF)
			So(errors.Is(err, ErrNetwork), ShouldBeTrue)
			So(errors.Is(err, io.ErrUnexpectedEOF), ShouldBeTrue)
		})

		Convey("200 with errors should be a GraphQL error", func() {
			_, err := classify(http.StatusOK, nil, []byte(`{"errors": [{"message": "Invalid ID"}]}`), nil)
			So(err, ShouldResemble, &Error{Kind: KindGraphQL, Message: "Invalid ID"})
		})

		Convey("Messages should be joined and missing ones named", func() {
			_, err := classify(http.StatusOK, nil, []byte(`{"errors":[{"message":"a"},{"status":400},{"message":"b"}]}`), nil)
			So(err.(*Error).Message, ShouldEqual, "a, Unknown error, b")
		})

		Convey("A non-array errors field should be stringified", func() {
			_, err := classify(http.StatusOK, nil, []byte(`{"errors": {"message": "odd"}}`), nil)
			So(err.(*Error).Message, ShouldEqual, `{"message":"odd"}`)
		})

		// AniList reports burst limiting inside a 200.
		Convey("200 with a rate limit message should be a burst limit", func() {
			for _, body := range []string{
				`{"errors": [{"message": "Too Many Requests"}]}`,
				`{"errors": [{"message": "Rate limit exceeded"}], "data": null}`,
			} {
				_, err := classify(http.StatusOK, nil, []byte(body), nil)
				So(KindOf(err), ShouldEqual, KindBurstLimit)
			}
		})
	})
}

func TestQuery(t *testing.T) {
	Convey("Given a client on a mock transport", t, func() {
		client, mock := newTestClient()

		Convey("The request body should be the query envelope", func() {
			var body []byte
			mock.RegisterResponder(http.MethodPost, testEndpoint, func(req *http.Request) (*http.Response, error) {
				body, _ = io.ReadAll(req.Body)
				return httpmock.NewStringResponse(http.StatusOK, `{"data":{}}`), nil
			})

			_, err := client.Query(context.Background(), "Q", map[string]any{"id": 5})
			So(err, ShouldBeNil)

			var got map[string]any
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(cmp.Diff(map[string]any{
				"query":     "Q",
				"variables": map[string]any{"id": float64(5)},
			}, got), ShouldBeEmpty)
		})

		Convey("Variables should be omitted when there are none", func() {
			var body []byte
			mock.RegisterResponder(http.MethodPost, testEndpoint, func(req *http.Request) (*http.Response, error) {
				body, _ = io.ReadAll(req.Body)
				return httpmock.NewStringResponse(http.StatusOK, `{"data":{}}`), nil
			})

			_, err := client.Query(context.Background(), "{ Viewer { id } }", nil)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"query":"{ Viewer { id } }"}`)
		})

		Convey("Headers should be set", func() {
			var header http.Header
			mock.RegisterResponder(http.MethodPost, testEndpoint, func(req *http.Request) (*http.Response, error) {
				header = req.Header
				return httpmock.NewStringResponse(http.StatusOK, `{"data":{}}`), nil
			})

			Convey("Anonymous requests should not be authorized", func() {
				_, err := client.Query(context.Background(), "Q", nil)
				So(err, ShouldBeNil)
				So(header.Get("Content-Type"), ShouldEqual, "application/json")
				So(header.Get("Accept"), ShouldEqual, "application/json")
				So(header.Get("User-Agent"), ShouldEqual, constant.UserAgent)
				So(header.Get("Authorization"), ShouldBeEmpty)
			})

			Convey("Authenticated requests should carry a bearer token", func() {
				_, err := client.Authenticated("secret").Query(context.Background(), "Q", nil)
				So(err, ShouldBeNil)
				So(header.Get("Authorization"), ShouldEqual, "Bearer secret")
			})
		})

		Convey("An empty query should be rejected without a request", func() {
			_, err := client.Query(context.Background(), "  ", nil)
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
			So(mock.GetTotalCallCount(), ShouldEqual, 0)
		})

		Convey("Transport failures should be network errors", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, httpmock.NewErrorResponder(errors.New("connection reset")))

			_, err := client.Query(context.Background(), "Q", nil)
			So(errors.Is(err, ErrNetwork), ShouldBeTrue)
		})

		Convey("A cancelled context should be a network error", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, func(req *http.Request) (*http.Response, error) {
				if err := req.Context().Err(); err != nil {
					return nil, err
				}
				return httpmock.NewStringResponse(http.StatusOK, `{"data":{}}`), nil
			})
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := client.Query(ctx, "Q", nil)
			So(errors.Is(err, ErrNetwork), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("A 429 should be classified from its headers", func() {
			mock.RegisterResponder(http.MethodPost, testEndpoint, respond(http.StatusTooManyRequests, "", rateHeaders()))

			_, err := client.Query(context.Background(), "Q", nil)
			So(err, ShouldResemble, NewRateLimitError(90, 0, 1700000000, 30))
			So(mock.GetTotalCallCount(), ShouldEqual, 1)
		})
	})
}
