package rlstats

// Platform is a platform Rocket League runs on. Known IDs: 1 is Steam,
// 2 is PS4, 3 is XboxOne.
type Platform struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Season is one competitive season. EndedOn is nil while the season is
// still running.
type Season struct {
	SeasonID  int64  `json:"seasonId"`
	StartedOn int64  `json:"startedOn"`
	EndedOn   *int64 `json:"endedOn"`
}

// Population is the current player count of a playlist.
type Population struct {
	Players   int   `json:"players"`
	UpdatedAt int64 `json:"updatedAt"`
}

type Playlist struct {
	ID         int        `json:"id"`
	PlatformID int        `json:"platformId"`
	Name       string     `json:"name"`
	Population Population `json:"population"`
}

// Tier is a ranked tier. IDs increment per tier and sub-tier, starting at
// 0 for Unranked.
type Tier struct {
	ID   int    `json:"tierId"`
	Name string `json:"tierName"`
}

type Stats struct {
	Wins    int `json:"wins"`
	Goals   int `json:"goals"`
	MVPs    int `json:"mvps"`
	Saves   int `json:"saves"`
	Shots   int `json:"shots"`
	Assists int `json:"assists"`
}

// RankedData is a player's standing in one playlist during one season.
// Every field is nil when the service recorded nothing for that pair.
type RankedData struct {
	RankPoints    *int `json:"rankPoints"`
	MatchesPlayed *int `json:"matchesPlayed"`
	Tier          *int `json:"tier"`
	Division      *int `json:"division"`
}

// Player is a tracked Rocket League player. The service only knows about
// accounts that have scored at least one goal.
//
// RankedSeasons maps a season ID to a map of playlist ID to RankedData;
// both keys arrive as strings on the wire.
type Player struct {
	// Steam 64 ID, PSN username or Xbox XUID, depending on the platform.
	UniqueID      string                           `json:"uniqueId"`
	DisplayName   string                           `json:"displayName"`
	Platform      Platform                         `json:"platform"`
	Avatar        *string                          `json:"avatar"`
	ProfileURL    string                           `json:"profileUrl"`
	SignatureURL  string                           `json:"signatureUrl"`
	Stats         Stats                            `json:"stats"`
	RankedSeasons map[string]map[string]RankedData `json:"rankedSeasons"`
	LastRequested int64                            `json:"lastRequested"`
	CreatedAt     int64                            `json:"createdAt"`
	UpdatedAt     int64                            `json:"updatedAt"`
	NextUpdateAt  int64                            `json:"nextUpdateAt"`
}

// SearchResponse is one page of a player search. Page is nil when the
// service does not echo pagination state back.
type SearchResponse struct {
	Page              *int     `json:"page"`
	Results           int      `json:"results"`
	TotalResults      int      `json:"totalResults"`
	MaxResultsPerPage int      `json:"maxResultsPerPage"`
	Data              []Player `json:"data"`
}

// BatchPlayer identifies one player in a BatchPlayers request. It is only
// ever sent, never received.
type BatchPlayer struct {
	UniqueID   string `json:"uniqueId"`
	PlatformID int    `json:"platformId"`
}
