package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/auth"
	"github.com/anisan-cli/anikit/filesystem"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestParseVars(t *testing.T) {
	Convey("parseVars", t, func() {
		Convey("Should detect scalar types", func() {
			vars, err := parseVars("", []string{"id=1", "score=8.5", "adult=false", "name=Bebop", "x=null"})
			So(err, ShouldBeNil)
			So(vars, ShouldResemble, map[string]any{
				"id":    int64(1),
				"score": 8.5,
				"adult": false,
				"name":  "Bebop",
				"x":     nil,
			})
		})

		Convey("Pairs should override the JSON object", func() {
			vars, err := parseVars(`{"id": 5, "page": 2}`, []string{"id=7"})
			So(err, ShouldBeNil)
			So(vars["id"], ShouldEqual, int64(7))
			So(vars["page"], ShouldEqual, float64(2))
		})

		Convey("A null JSON object should still accept pairs", func() {
			vars, err := parseVars("null", []string{"id=5"})
			So(err, ShouldBeNil)
			So(vars, ShouldResemble, map[string]any{"id": int64(5)})
		})

		Convey("No variables should yield nil", func() {
			vars, err := parseVars("", nil)
			So(err, ShouldBeNil)
			So(vars, ShouldBeNil)
		})

		Convey("Malformed input should be rejected", func() {
			_, err := parseVars("", []string{"novalue"})
			So(err, ShouldNotBeNil)

			_, err = parseVars("", []string{"=1"})
			So(err, ShouldNotBeNil)

			_, err = parseVars("[1]", nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestReadQuery(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		So(filesystem.API().WriteFile("viewer.graphql", []byte("\n{ Viewer { id } }\n"), 0o644), ShouldBeNil)

		Convey("An inline query should be trimmed", func() {
			q, err := readQuery("  { Page { pageInfo { total } } } ", nil)
			So(err, ShouldBeNil)
			So(q, ShouldEqual, "{ Page { pageInfo { total } } }")
		})

		Convey("@path should read the file", func() {
			q, err := readQuery("@viewer.graphql", nil)
			So(err, ShouldBeNil)
			So(q, ShouldEqual, "{ Viewer { id } }")
		})

		Convey("- should read stdin", func() {
			q, err := readQuery("-", strings.NewReader("{ SiteStatistics { users { nodes { count } } } }"))
			So(err, ShouldBeNil)
			So(q, ShouldStartWith, "{ SiteStatistics")
		})

		Convey("Missing files and blank queries should fail", func() {
			_, err := readQuery("@missing.graphql", nil)
			So(err, ShouldNotBeNil)

			_, err = readQuery("-", strings.NewReader("   "))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCurrentSeason(t *testing.T) {
	Convey("currentSeason", t, func() {
		at := func(month time.Month) time.Time {
			return time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC)
		}

		for _, tc := range []struct {
			month  time.Month
			season anilist.MediaSeason
			year   int
		}{
			{time.January, anilist.SeasonWinter, 2024},
			{time.April, anilist.SeasonSpring, 2024},
			{time.July, anilist.SeasonSummer, 2024},
			{time.October, anilist.SeasonFall, 2024},
			{time.December, anilist.SeasonWinter, 2025},
		} {
			season, year := currentSeason(at(tc.month))
			So(season, ShouldEqual, tc.season)
			So(year, ShouldEqual, tc.year)
		}
	})
}

func TestRateLimitHint(t *testing.T) {
	Convey("rateLimitHint", t, func() {
		now := time.Unix(1_700_000_000, 0)

		Convey("A detailed rate limit should suggest waiting out the window", func() {
			err := anilist.NewRateLimitError(90, 0, now.Add(42*time.Second).Unix(), 60)
			So(rateLimitHint(err, now), ShouldContainSubstring, "42s")
		})

		Convey("Other rate limits should fall back to Retry-After", func() {
			err := &anilist.Error{Kind: anilist.KindRateLimitSimple, RetryAfter: 30}
			So(rateLimitHint(err, now), ShouldContainSubstring, "30s")
		})

		Convey("Other errors should yield nothing", func() {
			So(rateLimitHint(anilist.ErrNotFound, now), ShouldBeEmpty)
			So(rateLimitHint(io.EOF, now), ShouldBeEmpty)
		})
	})
}

func TestConfigHelpers(t *testing.T) {
	Convey("errUnknownKey should suggest the closest key", t, func() {
		So(errUnknownKey("api.timout").Error(), ShouldContainSubstring, key.APITimeout)
	})

	Convey("parseValue should follow the default's type", t, func() {
		v, err := parseValue(key.APITimeout, []string{"15"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 15)

		v, err = parseValue(key.CliColored, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(key.LogsLevel, []string{"debug"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "debug")

		_, err = parseValue(key.APITimeout, []string{"soon"})
		So(err, ShouldNotBeNil)

		_, err = parseValue("api.nope", []string{"1"})
		So(err, ShouldNotBeNil)
	})
}

func TestEnvNames(t *testing.T) {
	Convey("envNames should be sorted and include the token and config path", t, func() {
		names := envNames()
		So(names, ShouldContain, auth.EnvToken)
		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldContain, "ANIKIT_API_ENDPOINT")

		for i := 1; i < len(names); i++ {
			So(names[i-1] <= names[i], ShouldBeTrue)
		}
	})
}

func TestSchema(t *testing.T) {
	Convey("reflectSchema", t, func() {
		Convey("Should describe a model", func() {
			schema, err := reflectSchema("Anime", false)
			So(err, ShouldBeNil)

			raw, err := json.Marshal(schema)
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, "averageScore")
		})

		Convey("Should wrap list schemas in an array", func() {
			schema, err := reflectSchema("review", true)
			So(err, ShouldBeNil)
			So(schema.Type, ShouldEqual, "array")
		})

		Convey("Should reject unknown models and name the known ones", func() {
			_, err := reflectSchema("episode", false)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "airing, anime")
		})
	})
}

func TestScriptPath(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		So(filesystem.API().WriteFile("local.lua", []byte("print(1)"), 0o644), ShouldBeNil)

		Convey("Existing and explicit paths should be kept", func() {
			So(scriptPath("local.lua"), ShouldEqual, "local.lua")
			So(scriptPath(filepath.Join("some", "where.lua")), ShouldEqual, filepath.Join("some", "where.lua"))
		})

		Convey("Bare names should resolve in the scripts directory", func() {
			So(scriptPath("weekly"), ShouldEqual, filepath.Join(where.Scripts(), "weekly.lua"))
		})
	})
}

func TestAuthorizeURL(t *testing.T) {
	Convey("authorizeURL should request an implicit grant", t, func() {
		So(authorizeURL("123"), ShouldEqual, "https://anilist.co/api/v2/oauth/authorize?client_id=123&response_type=token")
	})
}

func TestCompletion(t *testing.T) {
	Convey("completeFrom should match fuzzily and case-insensitively", t, func() {
		complete := completeFrom(enumValues(anilist.Seasons))
		got, directive := complete(nil, nil, "sm")
		So(got, ShouldResemble, []string{"SUMMER"})
		So(directive, ShouldEqual, cobra.ShellCompDirectiveNoFileComp)
	})
}

func TestQueryCommand(t *testing.T) {
	Convey("Given an AniList stand-in", t, func() {
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"data":{"Media":{"id":1,"title":{"romaji":"Cowboy Bebop"}}}}`)
		}))
		Reset(server.Close)

		viper.Set(key.APIEndpoint, server.URL)
		viper.Set(key.AuthKeyring, false)
		Reset(func() {
			viper.Set(key.APIEndpoint, nil)
			viper.Set(key.AuthKeyring, nil)
		})
		t.Setenv(auth.EnvToken, "")

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		Reset(func() { rootCmd.SetOut(os.Stdout) })

		Convey("query --raw should print the compact data object", func() {
			rootCmd.SetArgs([]string{"query", "query ($id: Int) { Media(id: $id) { id title { romaji } } }", "--var", "id=1", "--raw"})
			So(rootCmd.ExecuteContext(context.Background()), ShouldBeNil)

			So(strings.TrimSpace(out.String()), ShouldEqual, `{"Media":{"id":1,"title":{"romaji":"Cowboy Bebop"}}}`)
			So(body.Query, ShouldStartWith, "query ($id: Int)")
			So(body.Variables["id"], ShouldEqual, float64(1))
		})
	})
}
