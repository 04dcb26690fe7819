package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	entityList = "list"
	entityTask = "task"

	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

var (
	meter     = otel.Meter("usecases")
	Mutations metric.Int64Counter
)

func init() {
	var err error
	Mutations, err = meter.Int64Counter(
		"todolists_mutations_total",
		metric.WithDescription("Total mutations applied to lists and tasks"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordMutation records one applied mutation of the given entity.
func RecordMutation(ctx context.Context, entity, operation string) {
	Mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
	))
}
