// Package tools contains the built-in assistant tools.
package tools

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/adapters/outbound/rawg"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
)

const (
	Action_Search    = "search"
	Action_Details   = "details"
	Action_Genres    = "genres"
	Action_Platforms = "platforms"
)

// GameCatalog is the slice of the game-data client the fetcher tool needs.
type GameCatalog interface {
	SearchGames(ctx context.Context, params rawg.SearchParams) (any, error)
	GameDetails(ctx context.Context, gameID int) (any, error)
	Genres(ctx context.Context) (any, error)
	Platforms(ctx context.Context) (any, error)
}

// GameDataFetcherTool is the assistant tool for fetching video game data.
type GameDataFetcherTool struct {
	catalog GameCatalog
}

// NewGameDataFetcherTool creates a new instance of GameDataFetcherTool.
func NewGameDataFetcherTool(catalog GameCatalog) GameDataFetcherTool {
	return GameDataFetcherTool{catalog: catalog}
}

// StatusMessage returns a status message about the tool execution.
func (t GameDataFetcherTool) StatusMessage() string {
	return "🎮 Fetching game data..."
}

// Definition returns the tool definition for GameDataFetcherTool.
func (t GameDataFetcherTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "fetch_game_data",
		Description: "Fetch video game data from the RAWG API. Use this tool when users ask about games, ratings, platforms, genres, or any gaming statistics. You can search for games by name, filter by year, sort by rating or release date, and get detailed information.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"action": {
					Type:        "string",
					Enum:        []string{Action_Search, Action_Details, Action_Genres, Action_Platforms},
					Description: "The action to perform: search for games, get game details, list genres, or list platforms",
					Required:    true,
				},
				"search": {
					Type:        "string",
					Description: "Search query for game names (used with action: search)",
				},
				"game_id": {
					Type:        "number",
					Description: "Game ID for getting details (used with action: details)",
				},
				"page_size": {
					Type:        "number",
					Description: "Number of results to return (default: 10, max: 40)",
				},
				"ordering": {
					Type:        "string",
					Enum:        []string{"-rating", "-released", "-added", "-created", "-updated", "rating", "released"},
					Description: "Sort order: -rating (highest rated), -released (newest), rating (lowest rated), released (oldest)",
				},
				"dates": {
					Type:        "string",
					Description: "Date range filter in format YYYY-MM-DD,YYYY-MM-DD (e.g., \"2023-01-01,2023-12-31\")",
				},
				"platforms": {
					Type:        "string",
					Description: "Platform IDs to filter by (comma-separated, e.g., \"4,187\" for PC and PlayStation)",
				},
				"genres": {
					Type:        "string",
					Description: "Genre IDs to filter by (comma-separated)",
				},
			},
		},
	}
}

// Execute executes the GameDataFetcherTool with validated arguments.
func (t GameDataFetcherTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	action, _ := args["action"].(string)

	switch action {
	case Action_Search:
		return t.catalog.SearchGames(ctx, rawg.SearchParams{
			Search:    stringArg(args, "search"),
			PageSize:  intArg(args, "page_size"),
			Ordering:  stringArg(args, "ordering"),
			Dates:     stringArg(args, "dates"),
			Platforms: stringArg(args, "platforms"),
			Genres:    stringArg(args, "genres"),
		})
	case Action_Details:
		gameID, ok := args["game_id"].(float64)
		if !ok {
			return nil, domain.NewValidationErr("game_id is required for details action")
		}
		return t.catalog.GameDetails(ctx, int(gameID))
	case Action_Genres:
		return t.catalog.Genres(ctx)
	case Action_Platforms:
		return t.catalog.Platforms(ctx)
	default:
		return nil, domain.NewValidationErr(fmt.Sprintf("Unknown action: %s", action))
	}
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func intArg(args map[string]any, name string) int {
	f, _ := args[name].(float64)
	return int(f)
}
