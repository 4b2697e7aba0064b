package log_test

import (
	"context"
	"testing"

	"shareit/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")

	id, ok := log.RequestIDFromContext(ctx)
	if !ok || id != "req-1" {
		t.Errorf("expected req-1, got %q (ok=%v)", id, ok)
	}

	if _, ok := log.RequestIDFromContext(context.Background()); ok {
		t.Errorf("expected no request id on empty context")
	}
}

func TestInit(t *testing.T) {
	t.Run("Console Debug", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
		ctx := log.WithUserID(log.WithRequestID(context.Background(), "r"), 7)
		l.Debugf(ctx, "debug %d", 1)
		l.Info(ctx, "info")
	})

	t.Run("JSON Production Bad Level", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "nonsense", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		l.Warnf(context.Background(), "warn %s", "x")
		l.Errorf(context.TODO(), "error %v", 1)
	})

	t.Run("Nop", func(t *testing.T) {
		l := log.NewNop()
		l.Error(context.Background(), "discarded")
	})
}
