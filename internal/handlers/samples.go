package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/soccer-data-api/internal/models"
	"github.com/trentd187/soccer-data-api/internal/sample"
)

// GetSampleMatches handles GET /api/sample/matches.
// It returns every sample match, in authored order, wrapped in {"items": [...]}.
func GetSampleMatches(c *fiber.Ctx) error {
	return c.JSON(models.MatchList{Items: sample.ListMatches()})
}

// GetSamplePlayers handles GET /api/sample/players.
// It returns every sample player, in authored order, wrapped in {"items": [...]}.
func GetSamplePlayers(c *fiber.Ctx) error {
	return c.JSON(models.PlayerList{Items: sample.ListPlayers()})
}
