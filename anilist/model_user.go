// Package anilist is a typed client for the AniList GraphQL API.
package anilist

// UserOptions are the viewer-visible preferences of a user.
type UserOptions struct {
	TitleLanguage       string `json:"titleLanguage"`
	DisplayAdultContent bool   `json:"displayAdultContent"`
	AiringNotifications bool   `json:"airingNotifications"`
	ProfileColor        string `json:"profileColor"`
	Timezone            string `json:"timezone"`
}

// UserStatistics summarizes one list of a user.
type UserStatistics struct {
	Count             int     `json:"count"`
	MeanScore         float64 `json:"meanScore"`
	StandardDeviation float64 `json:"standardDeviation"`
	MinutesWatched    int     `json:"minutesWatched"`
	EpisodesWatched   int     `json:"episodesWatched"`
	ChaptersRead      int     `json:"chaptersRead"`
	VolumesRead       int     `json:"volumesRead"`
}

// User is an AniList account.
type User struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	About            string       `json:"about"`
	Avatar           Image        `json:"avatar"`
	BannerImage      string       `json:"bannerImage"`
	IsFollowing      bool         `json:"isFollowing"`
	IsFollower       bool         `json:"isFollower"`
	Options          *UserOptions `json:"options,omitempty"`
	MediaListOptions *struct {
		ScoreFormat string `json:"scoreFormat"`
	} `json:"mediaListOptions,omitempty"`
	Statistics *struct {
		Anime UserStatistics `json:"anime"`
		Manga UserStatistics `json:"manga"`
	} `json:"statistics,omitempty"`
	// UnreadNotificationCount is only populated for the viewer.
	UnreadNotificationCount int    `json:"unreadNotificationCount"`
	SiteURL                 string `json:"siteUrl"`
	CreatedAt               int64  `json:"createdAt"`
	UpdatedAt               int64  `json:"updatedAt"`
}

// UserSummary is the reduced user shape nested in social objects.
type UserSummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar Image  `json:"avatar"`
}

// MediaListStatus is the state of an entry on a user's list.
type MediaListStatus string

const (
	ListCurrent   MediaListStatus = "CURRENT"
	ListPlanning  MediaListStatus = "PLANNING"
	ListCompleted MediaListStatus = "COMPLETED"
	ListDropped   MediaListStatus = "DROPPED"
	ListPaused    MediaListStatus = "PAUSED"
	ListRepeating MediaListStatus = "REPEATING"
)

// ListStatuses lists every MediaListStatus.
var ListStatuses = []MediaListStatus{
	ListCurrent,
	ListPlanning,
	ListCompleted,
	ListDropped,
	ListPaused,
	ListRepeating,
}

// MediaList is one entry on a user's list.
type MediaList struct {
	ID              int             `json:"id"`
	UserID          int             `json:"userId"`
	MediaID         int             `json:"mediaId"`
	Status          MediaListStatus `json:"status"`
	Score           float64         `json:"score"`
	Progress        int             `json:"progress"`
	ProgressVolumes int             `json:"progressVolumes"`
	Repeat          int             `json:"repeat"`
	Priority        int             `json:"priority"`
	Private         bool            `json:"private"`
	Notes           string          `json:"notes"`
	StartedAt       FuzzyDate       `json:"startedAt"`
	CompletedAt     FuzzyDate       `json:"completedAt"`
	UpdatedAt       int64           `json:"updatedAt"`
	CreatedAt       int64           `json:"createdAt"`
	Media           *MediaSummary   `json:"media,omitempty"`
}

// MediaListGroup is one named list of a collection, e.g. "Watching".
type MediaListGroup struct {
	Name         string          `json:"name"`
	Status       MediaListStatus `json:"status"`
	IsCustomList bool            `json:"isCustomList"`
	Entries      []MediaList     `json:"entries"`
}
