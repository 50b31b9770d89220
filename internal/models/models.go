// Package models defines the record shapes served by the Soccer Data API.
//
// There are two independent record types:
//   - Match:  a single fixture (who played, where, when, and the final score)
//   - Player: a short player profile
//
// The two are not related to each other — a Player does not reference a Match or vice versa.
// Both are plain value types: once built they are never updated, so there are no setters.
//
// The struct field tags (the backtick strings like `json:"home_team"`) control the JSON field
// names. encoding/json emits fields in declaration order, so the order below IS the order
// clients see in every response.
package models

// Match is one sample fixture.
// Every field is a free-text string; Date is an ISO 8601 date ("2023-06-10") stored verbatim,
// never parsed, and Score may carry annotations such as "3-3 (4-2 pens)".
type Match struct {
	ID          string `json:"id"`          // Unique within the sample set, e.g. "ucl-2023-final"
	Date        string `json:"date"`        // ISO 8601 date, kept as text
	Competition string `json:"competition"` // e.g. "UEFA Champions League"
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Venue       string `json:"venue"`
	Score       string `json:"score"` // Final score, possibly with penalty notation
}

// Player is one sample player profile.
// Position may encode several positions separated by "/" (e.g. "RW/CF").
type Player struct {
	ID       string `json:"id"` // Unique within the sample set, e.g. "nor-9"
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"` // No range validation
	Club     string `json:"club"`
	Nation   string `json:"nation"`
}

// MatchList is the response envelope for GET /api/sample/matches.
type MatchList struct {
	Items []Match `json:"items"`
}

// PlayerList is the response envelope for GET /api/sample/players.
type PlayerList struct {
	Items []Player `json:"items"`
}
