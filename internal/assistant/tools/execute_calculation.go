package tools

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/stats"
)

// CalculationTool is the assistant tool for statistical calculations.
type CalculationTool struct{}

// NewCalculationTool creates a new instance of CalculationTool.
func NewCalculationTool() CalculationTool {
	return CalculationTool{}
}

// StatusMessage returns a status message about the tool execution.
func (t CalculationTool) StatusMessage() string {
	return "🧮 Crunching the numbers..."
}

// Definition returns the tool definition for CalculationTool.
func (t CalculationTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "execute_calculation",
		Description: "Perform statistical calculations on arrays of numbers. Calculate sum, average (mean), and standard deviation.",
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"numbers": {
					Type:        "array",
					Items:       &domain.ToolItems{Type: "number"},
					Description: "Array of numbers to perform calculations on",
					Required:    true,
				},
				"operations": {
					Type: "array",
					Items: &domain.ToolItems{
						Type: "string",
						Enum: []string{stats.Operation_Sum, stats.Operation_Average, stats.Operation_StdDev},
					},
					Description: "Operations to perform: sum, average, std_dev (standard deviation). If not specified, all operations will be performed.",
				},
			},
		},
	}
}

// Execute executes the CalculationTool with validated arguments.
func (t CalculationTool) Execute(_ context.Context, args map[string]any) (any, error) {
	rawNumbers, ok := args["numbers"].([]any)
	if !ok {
		return nil, domain.NewValidationErr("numbers must be an array")
	}

	numbers := make([]float64, len(rawNumbers))
	for i, raw := range rawNumbers {
		n, ok := raw.(float64)
		if !ok {
			return nil, domain.NewValidationErr("All elements in numbers array must be valid numbers")
		}
		numbers[i] = n
	}

	var operations []string
	if rawOperations, ok := args["operations"].([]any); ok {
		operations = make([]string, 0, len(rawOperations))
		for _, raw := range rawOperations {
			op, ok := raw.(string)
			if !ok {
				return nil, domain.NewValidationErr("operations must contain only strings")
			}
			operations = append(operations, op)
		}
	}

	return stats.Calculate(numbers, operations)
}
