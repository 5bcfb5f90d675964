// Package anilist is a typed client for the AniList GraphQL API.
package anilist

// Selection sets shared by the endpoint queries.

var mediaSummaryFields = `
id
type
title { romaji english native userPreferred }
format
status
episodes
chapters
averageScore
coverImage { large medium color }
siteUrl
`

var userSummaryFields = `
id
name
avatar { large medium }
`

var mediaFields = `
id
idMal
title { romaji english native userPreferred }
description(asHtml: false)
format
status
startDate { year month day }
endDate { year month day }
genres
synonyms
averageScore
meanScore
popularity
favourites
countryOfOrigin
isAdult
source
hashtag
coverImage { extraLarge large medium color }
bannerImage
updatedAt
siteUrl
`

var animeFields = mediaFields + `
season
seasonYear
episodes
duration
nextAiringEpisode { id airingAt timeUntilAiring episode mediaId }
studios(isMain: true) { nodes { id name isAnimationStudio siteUrl favourites } }
trailer { id site }
`

var mangaFields = mediaFields + `
chapters
volumes
`

var characterFields = `
id
name { first middle last full native alternative userPreferred }
image { large medium }
description
gender
dateOfBirth { year month day }
age
bloodType
isFavourite
favourites
siteUrl
`

var staffFields = `
id
name { first middle last full native alternative userPreferred }
languageV2
image { large medium }
description
primaryOccupations
gender
dateOfBirth { year month day }
dateOfDeath { year month day }
age
yearsActive
homeTown
bloodType
isFavourite
favourites
siteUrl
`

var userFields = `
id
name
about
avatar { large medium }
bannerImage
isFollowing
isFollower
options { titleLanguage displayAdultContent airingNotifications profileColor timezone }
mediaListOptions { scoreFormat }
statistics {
	anime { count meanScore standardDeviation minutesWatched episodesWatched }
	manga { count meanScore standardDeviation chaptersRead volumesRead }
}
siteUrl
createdAt
updatedAt
`

var mediaListFields = `
id
userId
mediaId
status
score
progress
progressVolumes
repeat
priority
private
notes
startedAt { year month day }
completedAt { year month day }
updatedAt
createdAt
media {` + mediaSummaryFields + `}
`

var studioFields = `
id
name
isAnimationStudio
isFavourite
favourites
siteUrl
`

var threadFields = `
id
title
body
userId
replyCount
viewCount
likeCount
isLiked
isLocked
createdAt
updatedAt
repliedAt
user {` + userSummaryFields + `}
categories { id name }
siteUrl
`

var threadCommentFields = `
id
userId
threadId
comment
likeCount
isLiked
createdAt
updatedAt
user {` + userSummaryFields + `}
siteUrl
`

var reviewFields = `
id
userId
mediaId
mediaType
summary
body
rating
ratingAmount
userRating
score
private
siteUrl
createdAt
updatedAt
user {` + userSummaryFields + `}
media {` + mediaSummaryFields + `}
`

var recommendationFields = `
id
rating
userRating
media {` + mediaSummaryFields + `}
mediaRecommendation {` + mediaSummaryFields + `}
user {` + userSummaryFields + `}
`

var textActivityFields = `
id
userId
text
replyCount
likeCount
isLiked
isPinned
createdAt
siteUrl
user {` + userSummaryFields + `}
`

// activityFields selects every activity variant into the flat Activity shape.
var activityFields = `
... on TextActivity {` + textActivityFields + `type }
... on ListActivity {
	id
	userId
	type
	status
	progress
	replyCount
	likeCount
	isLiked
	isPinned
	createdAt
	siteUrl
	user {` + userSummaryFields + `}
	media {` + mediaSummaryFields + `}
}
... on MessageActivity {
	id
	type
	text: message
	replyCount
	likeCount
	isLiked
	createdAt
	siteUrl
	user: messenger {` + userSummaryFields + `}
}
`

var activityReplyFields = `
id
userId
activityId
text
likeCount
isLiked
createdAt
user {` + userSummaryFields + `}
`

var airingFields = `
id
airingAt
timeUntilAiring
episode
mediaId
media {` + mediaSummaryFields + `}
`

// notificationFields covers the notification variants that carry media or a user.
var notificationFields = `
... on AiringNotification { id type animeId episode contexts createdAt media {` + mediaSummaryFields + `} }
... on RelatedMediaAdditionNotification { id type context createdAt media {` + mediaSummaryFields + `} }
... on MediaDataChangeNotification { id type context createdAt media {` + mediaSummaryFields + `} }
... on FollowingNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ActivityMessageNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ActivityReplyNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ActivityLikeNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ActivityMentionNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ThreadCommentReplyNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ThreadCommentMentionNotification { id userId type context createdAt user {` + userSummaryFields + `} }
... on ThreadLikeNotification { id userId type context createdAt user {` + userSummaryFields + `} }
`
