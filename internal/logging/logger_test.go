package logging

import (
	"context"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger := NewLogger(true)
	if logger == nil {
		t.Fatal("logger cannot be nil")
	}
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	logger1 := DefaultLogger()
	if logger1 == nil {
		t.Fatal("logger cannot be nil")
	}

	logger2 := DefaultLogger()
	if logger1 != logger2 {
		t.Errorf("expected %#v got %#v", logger1, logger2)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger1 := FromContext(ctx)
	if logger1 == nil {
		t.Fatal("logger cannot be nil")
	}

	named := logger1.Named("test")
	ctx = WithLogger(ctx, named)

	logger2 := FromContext(ctx)
	if named != logger2 {
		t.Errorf("expected %#v got %#v", named, logger2)
	}
}
