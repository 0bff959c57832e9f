package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithMemberID_And_MemberIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithMemberID(context.Background(), id)

	got, ok := MemberIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestMemberIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := MemberIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestMemberIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithMemberID(context.Background(), uuid.Nil)

	got, ok := MemberIDFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for uuid.Nil")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
