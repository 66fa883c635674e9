package tools

import (
	"context"
	"encoding/json"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/stats"
)

// RatingAverageTool is the assistant tool for weighted rating averages.
type RatingAverageTool struct{}

// NewRatingAverageTool creates a new instance of RatingAverageTool.
func NewRatingAverageTool() RatingAverageTool {
	return RatingAverageTool{}
}

// StatusMessage returns a status message about the tool execution.
func (t RatingAverageTool) StatusMessage() string {
	return "⭐ Calculating rating average..."
}

// Definition returns the tool definition for RatingAverageTool.
func (t RatingAverageTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "calculate_rating_average",
		Description: "Calculate weighted average rating from RAWG API rating data. Takes an array of rating objects (each with id, title, count, percent) and computes the weighted average based on counts. Rating IDs: 5=exceptional, 4=recommended, 3=meh, 1=skip.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"ratings": {
					Type:        "array",
					Description: "Array of rating objects from RAWG API",
					Required:    true,
					Items: &domain.ToolItems{
						Type: "object",
						Fields: map[string]domain.ToolField{
							"id": {
								Type:        "number",
								Description: "Rating ID (5=exceptional, 4=recommended, 3=meh, 1=skip)",
								Required:    true,
							},
							"title": {
								Type:        "string",
								Description: "Rating title (exceptional, recommended, meh, skip)",
							},
							"count": {
								Type:        "number",
								Description: "Number of ratings at this level",
								Required:    true,
							},
							"percent": {
								Type:        "number",
								Description: "Percentage of total ratings",
							},
						},
					},
				},
			},
		},
	}
}

// Execute executes the RatingAverageTool with validated arguments.
func (t RatingAverageTool) Execute(_ context.Context, args map[string]any) (any, error) {
	rawRatings, ok := args["ratings"].([]any)
	if !ok {
		return nil, domain.NewValidationErr("ratings must be an array")
	}

	encoded, err := json.Marshal(rawRatings)
	if err != nil {
		return nil, domain.NewValidationErr("ratings must be an array of rating objects")
	}

	var ratings []stats.RatingEntry
	if err := json.Unmarshal(encoded, &ratings); err != nil {
		return nil, domain.NewValidationErr("Each rating must have numeric id and count properties")
	}

	return stats.WeightedRatingAverage(ratings)
}
