// Package sample holds the hardcoded sample data served by the API.
//
// The two lists below are built once, when the package is initialised, and are never modified
// afterwards. They are unexported so no other package can reach them directly; the only way in
// is through ListMatches and ListPlayers, which hand out copies. Because nothing can write to
// the lists, request handlers can read them concurrently without any locking.
package sample

import "github.com/trentd187/soccer-data-api/internal/models"

// matches are listed in the order they are served.
var matches = []models.Match{
	{
		ID:          "ucl-2023-final",
		Date:        "2023-06-10",
		Competition: "UEFA Champions League",
		HomeTeam:    "Manchester City",
		AwayTeam:    "Inter Milan",
		Venue:       "Atatürk Olympic Stadium",
		Score:       "1-0",
	},
	{
		ID:          "wc-2022-final",
		Date:        "2022-12-18",
		Competition: "FIFA World Cup",
		HomeTeam:    "Argentina",
		AwayTeam:    "France",
		Venue:       "Lusail Stadium",
		Score:       "3-3 (4-2 pens)",
	},
	{
		ID:          "prem-2024-title-decider",
		Date:        "2024-05-19",
		Competition: "Premier League",
		HomeTeam:    "Manchester City",
		AwayTeam:    "West Ham",
		Venue:       "Etihad Stadium",
		Score:       "3-1",
	},
}

var players = []models.Player{
	{ID: "arg-10", Name: "Lionel Messi", Position: "RW/CF", Age: 36, Club: "Inter Miami", Nation: "Argentina"},
	{ID: "fra-7", Name: "Kylian Mbappé", Position: "LW/CF", Age: 26, Club: "Real Madrid", Nation: "France"},
	{ID: "nor-9", Name: "Erling Haaland", Position: "ST", Age: 25, Club: "Manchester City", Nation: "Norway"},
}

// ListMatches returns every sample match in authored order.
// The returned slice is a copy: changing it does not affect later calls.
func ListMatches() []models.Match {
	out := make([]models.Match, len(matches))
	copy(out, matches)
	return out
}

// ListPlayers returns every sample player in authored order.
// The returned slice is a copy: changing it does not affect later calls.
func ListPlayers() []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)
	return out
}
