package state

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Uptime() < 0 {
		t.Error("Uptime() went backwards")
	}
}

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		ctx := ContextWithEnv(context.Background())
		if EnvFromContext(ctx) == nil {
			t.Error("Expected non-nil environment")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("EnvFromContext() should panic on context without env")
			}
		}()
		EnvFromContext(context.Background())
	})
}

func TestStdLogRedirection(t *testing.T) {
	env := newLocalEnv()

	// no logger - both are safe no-ops
	env.RedirectStdLog()
	env.RestoreStdLog()

	env.Log = zaptest.NewLogger(t)
	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Error("RedirectStdLog() did not install restore hook")
	}
	env.RestoreStdLog()
}
