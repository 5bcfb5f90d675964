// Package anilist is a typed client for the AniList GraphQL API.
package anilist

// CharacterName holds the name variants of a character.
type CharacterName struct {
	First         string   `json:"first"`
	Middle        string   `json:"middle"`
	Last          string   `json:"last"`
	Full          string   `json:"full"`
	Native        string   `json:"native"`
	Alternative   []string `json:"alternative"`
	UserPreferred string   `json:"userPreferred"`
}

// Image is a pair of portrait URLs.
type Image struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
}

// Character is a fictional character.
type Character struct {
	ID          int           `json:"id"`
	Name        CharacterName `json:"name"`
	Image       Image         `json:"image"`
	Description string        `json:"description" jsonschema:"description=Biography in markdown."`
	Gender      string        `json:"gender"`
	DateOfBirth FuzzyDate     `json:"dateOfBirth"`
	// Age is free text on AniList, e.g. "17" or "Late teens".
	Age         string `json:"age"`
	BloodType   string `json:"bloodType"`
	IsFavourite bool   `json:"isFavourite"`
	Favourites  int    `json:"favourites"`
	SiteURL     string `json:"siteUrl"`
}

// StaffName holds the name variants of a staff member.
type StaffName struct {
	First         string   `json:"first"`
	Middle        string   `json:"middle"`
	Last          string   `json:"last"`
	Full          string   `json:"full"`
	Native        string   `json:"native"`
	Alternative   []string `json:"alternative"`
	UserPreferred string   `json:"userPreferred"`
}

// Staff is a voice actor or production staff member.
type Staff struct {
	ID                 int       `json:"id"`
	Name               StaffName `json:"name"`
	LanguageV2         string    `json:"languageV2"`
	Image              Image     `json:"image"`
	Description        string    `json:"description"`
	PrimaryOccupations []string  `json:"primaryOccupations"`
	Gender             string    `json:"gender"`
	DateOfBirth        FuzzyDate `json:"dateOfBirth"`
	DateOfDeath        FuzzyDate `json:"dateOfDeath"`
	Age                int       `json:"age"`
	// YearsActive is [start] or [start, end].
	YearsActive []int  `json:"yearsActive"`
	HomeTown    string `json:"homeTown"`
	BloodType   string `json:"bloodType"`
	IsFavourite bool   `json:"isFavourite"`
	Favourites  int    `json:"favourites"`
	SiteURL     string `json:"siteUrl"`
}
