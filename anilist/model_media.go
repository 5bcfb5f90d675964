// Package anilist is a typed client for the AniList GraphQL API.
package anilist

import "fmt"

// FuzzyDate is a calendar date any part of which may be unknown (zero).
type FuzzyDate struct {
	Year  int `json:"year" jsonschema:"description=Year or 0 when unknown."`
	Month int `json:"month" jsonschema:"description=Month 1-12 or 0 when unknown."`
	Day   int `json:"day" jsonschema:"description=Day of month or 0 when unknown."`
}

// IsZero reports whether nothing about the date is known.
func (d FuzzyDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the known parts as YYYY, YYYY-MM or YYYY-MM-DD.
func (d FuzzyDate) String() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// MediaTitle holds the title variants AniList tracks.
type MediaTitle struct {
	Romaji        string `json:"romaji" jsonschema:"description=Romanized title."`
	English       string `json:"english" jsonschema:"description=Official English title."`
	Native        string `json:"native" jsonschema:"description=Title in its native language. Usually in kanji."`
	UserPreferred string `json:"userPreferred" jsonschema:"description=Title in the language the viewer prefers."`
}

// Name prefers the English title and falls back to romaji, then native.
func (t MediaTitle) Name() string {
	switch {
	case t.English != "":
		return t.English
	case t.Romaji != "":
		return t.Romaji
	default:
		return t.Native
	}
}

// CoverImage contains URLs for different sizes of cover art.
type CoverImage struct {
	// ExtraLarge falls back to Large on AniList's side when no bigger image exists.
	ExtraLarge string `json:"extraLarge" jsonschema:"description=URL of the extra large cover image."`
	Large      string `json:"large" jsonschema:"description=URL of the large cover image."`
	Medium     string `json:"medium" jsonschema:"description=URL of the medium cover image."`
	// Color is the average colour of the cover as #rrggbb.
	Color string `json:"color" jsonschema:"description=Average color of the cover image."`
}

// MediaType separates anime from manga.
type MediaType string

const (
	MediaTypeAnime MediaType = "ANIME"
	MediaTypeManga MediaType = "MANGA"
)

// MediaSeason is the quarter an anime premiered in.
type MediaSeason string

const (
	SeasonWinter MediaSeason = "WINTER"
	SeasonSpring MediaSeason = "SPRING"
	SeasonSummer MediaSeason = "SUMMER"
	SeasonFall   MediaSeason = "FALL"
)

// Seasons lists every MediaSeason in calendar order.
var Seasons = []MediaSeason{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}

// Media is the part of a media entry anime and manga share.
type Media struct {
	// ID is the unique identifier on AniList.
	ID    int        `json:"id" jsonschema:"description=ID on AniList."`
	IDMal int        `json:"idMal" jsonschema:"description=ID on MyAnimeList."`
	Title MediaTitle `json:"title"`
	// Description is the synopsis, which AniList serves as HTML.
	Description string    `json:"description" jsonschema:"description=Synopsis in html format."`
	Format      string    `json:"format" jsonschema:"enum=TV,enum=TV_SHORT,enum=MOVIE,enum=SPECIAL,enum=OVA,enum=ONA,enum=MUSIC,enum=MANGA,enum=NOVEL,enum=ONE_SHOT"`
	Status      string    `json:"status" jsonschema:"enum=FINISHED,enum=RELEASING,enum=NOT_YET_RELEASED,enum=CANCELLED,enum=HIATUS"`
	StartDate   FuzzyDate `json:"startDate" jsonschema:"description=Date the media started."`
	EndDate     FuzzyDate `json:"endDate" jsonschema:"description=Date the media ended."`
	Genres      []string  `json:"genres" jsonschema:"description=Genres."`
	Synonyms    []string  `json:"synonyms" jsonschema:"description=Alternative titles."`
	// AverageScore is weighted, MeanScore is not. Both are 0-100.
	AverageScore    int        `json:"averageScore" jsonschema:"description=Weighted average score 0-100."`
	MeanScore       int        `json:"meanScore" jsonschema:"description=Mean score 0-100."`
	Popularity      int        `json:"popularity" jsonschema:"description=Number of users with the media on their list."`
	Favourites      int        `json:"favourites" jsonschema:"description=Number of users who favourited the media."`
	CountryOfOrigin string     `json:"countryOfOrigin" jsonschema:"description=ISO 3166-1 alpha-2 country code."`
	IsAdult         bool       `json:"isAdult"`
	Source          string     `json:"source" jsonschema:"description=Source material such as MANGA or ORIGINAL."`
	Hashtag         string     `json:"hashtag"`
	CoverImage      CoverImage `json:"coverImage" jsonschema:"description=Cover image."`
	BannerImage     string     `json:"bannerImage" jsonschema:"description=Banner image URL."`
	UpdatedAt       int64      `json:"updatedAt" jsonschema:"description=Unix time of the last change on AniList."`
	SiteURL         string     `json:"siteUrl" jsonschema:"description=URL on AniList."`
}

// Name returns the display title.
func (m *Media) Name() string {
	return m.Title.Name()
}

// Anime is an ANIME media entry.
type Anime struct {
	Media

	Season     MediaSeason `json:"season" jsonschema:"enum=WINTER,enum=SPRING,enum=SUMMER,enum=FALL"`
	SeasonYear int         `json:"seasonYear"`
	// Episodes is the total when complete, 0 while unknown.
	Episodes int `json:"episodes" jsonschema:"description=Total number of episodes when complete."`
	// Duration is the length of one episode in minutes.
	Duration          int             `json:"duration" jsonschema:"description=Episode length in minutes."`
	NextAiringEpisode *AiringSchedule `json:"nextAiringEpisode" jsonschema:"description=Next episode to air. Absent when none is scheduled."`
	Studios           struct {
		Nodes []Studio `json:"nodes"`
	} `json:"studios" jsonschema:"description=Animation studios."`
	Trailer *struct {
		ID   string `json:"id"`
		Site string `json:"site"`
	} `json:"trailer"`
}

// Manga is a MANGA media entry.
type Manga struct {
	Media

	Chapters int `json:"chapters" jsonschema:"description=Total number of chapters when complete."`
	Volumes  int `json:"volumes" jsonschema:"description=Total number of volumes when complete."`
}

// MediaSummary is the reduced media shape nested in lists, reviews, recommendations and activities.
type MediaSummary struct {
	ID           int        `json:"id"`
	Type         MediaType  `json:"type"`
	Title        MediaTitle `json:"title"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	Episodes     int        `json:"episodes"`
	Chapters     int        `json:"chapters"`
	AverageScore int        `json:"averageScore"`
	CoverImage   CoverImage `json:"coverImage"`
	SiteURL      string     `json:"siteUrl"`
}

// AiringSchedule is one scheduled episode.
type AiringSchedule struct {
	ID              int           `json:"id"`
	AiringAt        int64         `json:"airingAt" jsonschema:"description=Unix time the episode airs."`
	TimeUntilAiring int64         `json:"timeUntilAiring" jsonschema:"description=Seconds until the episode airs. Negative once aired."`
	Episode         int           `json:"episode"`
	MediaID         int           `json:"mediaId"`
	Media           *MediaSummary `json:"media,omitempty"`
}

// input renders the date as a FuzzyDateInput, leaving unknown parts out.
func (d FuzzyDate) input() map[string]int {
	in := make(map[string]int, 3)
	if d.Year != 0 {
		in["year"] = d.Year
	}
	if d.Month != 0 {
		in["month"] = d.Month
	}
	if d.Day != 0 {
		in["day"] = d.Day
	}
	return in
}
