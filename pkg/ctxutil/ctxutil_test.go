package ctxutil

import (
	"context"
	"testing"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

func TestWithCredentialID_And_CredentialIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithCredentialID(context.Background(), 3)

	got, ok := CredentialIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for a non-zero id")
	}
	if got != domain.ID(3) {
		t.Fatalf("expected 3, got %s", got)
	}
}

func TestCredentialIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := CredentialIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
}

func TestCredentialIDFromCtx_Zero(t *testing.T) {
	t.Parallel()

	if _, ok := CredentialIDFromCtx(WithCredentialID(context.Background(), 0)); ok {
		t.Fatal("expected ok=false for the zero id")
	}
}

func TestCredentialIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("credential_id"), int64(3))

	if _, ok := CredentialIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
