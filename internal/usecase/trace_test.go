package usecase

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestStartUsecaseSpan(t *testing.T) {
	traced := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{9, 8, 7},
		SpanID:     trace.SpanID{6, 5, 4},
		TraceFlags: trace.FlagsSampled,
	}))

	tests := []struct {
		name      string
		ctx       context.Context
		span      string
		wantChild bool
	}{
		{name: "service operation", ctx: traced, span: "usecase.RosterService.Add", wantChild: true},
		{name: "outside a trace", ctx: context.Background(), span: "usecase.RosterService.Add", wantChild: false},
		{name: "missing operation", ctx: traced, span: "usecase.RosterService", wantChild: false},
		{name: "foreign prefix", ctx: traced, span: "httpapi.Handler.ListPlayers", wantChild: false},
		{name: "blank", ctx: traced, span: "  ", wantChild: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, span := startUsecaseSpan(tt.ctx, tt.span)
			defer span.End()

			if child := got != tt.ctx; child != tt.wantChild {
				t.Fatalf("startUsecaseSpan(%q) child=%v want=%v", tt.span, child, tt.wantChild)
			}
		})
	}
}

func TestSplitSpanName(t *testing.T) {
	service, operation, ok := splitSpanName("usecase.LiveMatchService.SetScore")
	if !ok || service != "LiveMatchService" || operation != "SetScore" {
		t.Fatalf("unexpected split: %q %q %v", service, operation, ok)
	}
}
