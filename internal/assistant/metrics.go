package assistant

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter          = otel.Meter("assistant")
	ToolExecutions metric.Int64Counter
)

func init() {
	var err error
	// Tool executions dispatched through the registry
	ToolExecutions, err = meter.Int64Counter(
		"tool_executions_total",
		metric.WithDescription("Total tool executions dispatched"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolExecution records one dispatched tool execution and its outcome.
func RecordToolExecution(ctx context.Context, toolName string, success bool) {
	ToolExecutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", toolName),
		attribute.Bool("success", success),
	))
}
