package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const usecaseSpanPrefix = "usecase."

var (
	clubTracer   = otel.Tracer("club-manager/internal/usecase")
	clubNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan opens a child span named "usecase.<Service>.<Operation>"
// tagged with the service and operation. Calls outside a trace, or with a name
// that does not follow that shape, get a no-op span.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	service, operation, ok := splitSpanName(name)
	if !ok || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, clubNoopSpan
	}
	return clubTracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("club.service", service),
			attribute.String("club.operation", operation),
		),
	)
}

func splitSpanName(name string) (service, operation string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(name), usecaseSpanPrefix)
	if !found {
		return "", "", false
	}
	service, operation, found = strings.Cut(rest, ".")
	if !found || service == "" || operation == "" {
		return "", "", false
	}
	return service, operation, true
}
