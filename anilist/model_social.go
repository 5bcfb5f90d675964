// Package anilist is a typed client for the AniList GraphQL API.
package anilist

// Studio is an animation studio or producer.
type Studio struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	IsAnimationStudio bool   `json:"isAnimationStudio"`
	IsFavourite       bool   `json:"isFavourite"`
	Favourites        int    `json:"favourites"`
	SiteURL           string `json:"siteUrl"`
}

// ThreadCategory is a forum category.
type ThreadCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Thread is a forum thread.
type Thread struct {
	ID         int              `json:"id"`
	Title      string           `json:"title"`
	Body       string           `json:"body"`
	UserID     int              `json:"userId"`
	ReplyCount int              `json:"replyCount"`
	ViewCount  int              `json:"viewCount"`
	LikeCount  int              `json:"likeCount"`
	IsLiked    bool             `json:"isLiked"`
	IsLocked   bool             `json:"isLocked"`
	CreatedAt  int64            `json:"createdAt"`
	UpdatedAt  int64            `json:"updatedAt"`
	RepliedAt  int64            `json:"repliedAt"`
	User       *UserSummary     `json:"user,omitempty"`
	Categories []ThreadCategory `json:"categories"`
	SiteURL    string           `json:"siteUrl"`
}

// ThreadComment is a reply in a forum thread.
type ThreadComment struct {
	ID        int          `json:"id"`
	UserID    int          `json:"userId"`
	ThreadID  int          `json:"threadId"`
	Comment   string       `json:"comment"`
	LikeCount int          `json:"likeCount"`
	IsLiked   bool         `json:"isLiked"`
	CreatedAt int64        `json:"createdAt"`
	UpdatedAt int64        `json:"updatedAt"`
	User      *UserSummary `json:"user,omitempty"`
	SiteURL   string       `json:"siteUrl"`
}

// ReviewRating is the viewer's vote on a review.
type ReviewRating string

const (
	ReviewNoVote   ReviewRating = "NO_VOTE"
	ReviewUpVote   ReviewRating = "UP_VOTE"
	ReviewDownVote ReviewRating = "DOWN_VOTE"
)

// Review is a user review of a media entry.
type Review struct {
	ID           int           `json:"id"`
	UserID       int           `json:"userId"`
	MediaID      int           `json:"mediaId"`
	MediaType    MediaType     `json:"mediaType"`
	Summary      string        `json:"summary"`
	Body         string        `json:"body"`
	Rating       int           `json:"rating"`
	RatingAmount int           `json:"ratingAmount"`
	UserRating   ReviewRating  `json:"userRating"`
	Score        int           `json:"score"`
	Private      bool          `json:"private"`
	SiteURL      string        `json:"siteUrl"`
	CreatedAt    int64         `json:"createdAt"`
	UpdatedAt    int64         `json:"updatedAt"`
	User         *UserSummary  `json:"user,omitempty"`
	Media        *MediaSummary `json:"media,omitempty"`
}

// RecommendationRating is the viewer's vote on a recommendation.
type RecommendationRating string

const (
	RecommendationNoRating RecommendationRating = "NO_RATING"
	RecommendationRateUp   RecommendationRating = "RATE_UP"
	RecommendationRateDown RecommendationRating = "RATE_DOWN"
)

// Recommendation pairs a media entry with one users suggest alongside it.
type Recommendation struct {
	ID                  int                  `json:"id"`
	Rating              int                  `json:"rating"`
	UserRating          RecommendationRating `json:"userRating"`
	Media               *MediaSummary        `json:"media,omitempty"`
	MediaRecommendation *MediaSummary        `json:"mediaRecommendation,omitempty"`
	User                *UserSummary         `json:"user,omitempty"`
}

// Activity is a feed entry. Text, list and message activities share these fields.
type Activity struct {
	ID         int           `json:"id"`
	UserID     int           `json:"userId"`
	Type       string        `json:"type"`
	Text       string        `json:"text"`
	Status     string        `json:"status"`
	Progress   string        `json:"progress"`
	ReplyCount int           `json:"replyCount"`
	LikeCount  int           `json:"likeCount"`
	IsLiked    bool          `json:"isLiked"`
	IsPinned   bool          `json:"isPinned"`
	CreatedAt  int64         `json:"createdAt"`
	User       *UserSummary  `json:"user,omitempty"`
	Media      *MediaSummary `json:"media,omitempty"`
	SiteURL    string        `json:"siteUrl"`
}

// ActivityReply is a reply to an activity.
type ActivityReply struct {
	ID         int          `json:"id"`
	UserID     int          `json:"userId"`
	ActivityID int          `json:"activityId"`
	Text       string       `json:"text"`
	LikeCount  int          `json:"likeCount"`
	IsLiked    bool         `json:"isLiked"`
	CreatedAt  int64        `json:"createdAt"`
	User       *UserSummary `json:"user,omitempty"`
}

// Notification is one viewer notification. Which fields are set depends on Type.
type Notification struct {
	ID        int           `json:"id"`
	UserID    int           `json:"userId"`
	Type      string        `json:"type"`
	AnimeID   int           `json:"animeId"`
	Episode   int           `json:"episode"`
	Context   string        `json:"context"`
	Contexts  []string      `json:"contexts"`
	CreatedAt int64         `json:"createdAt"`
	Media     *MediaSummary `json:"media,omitempty"`
	User      *UserSummary  `json:"user,omitempty"`
}

// TextActivity is a status post.
type TextActivity struct {
	ID         int          `json:"id"`
	UserID     int          `json:"userId"`
	Text       string       `json:"text"`
	ReplyCount int          `json:"replyCount"`
	LikeCount  int          `json:"likeCount"`
	IsLiked    bool         `json:"isLiked"`
	IsPinned   bool         `json:"isPinned"`
	CreatedAt  int64        `json:"createdAt"`
	User       *UserSummary `json:"user,omitempty"`
	SiteURL    string       `json:"siteUrl"`
}
