package store

import (
	"context"
	"testing"
)

func TestMemoryStoreClaimOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	ok, err := s.Claim(ctx, "2023-01-15")
	if err != nil || !ok {
		t.Fatalf("expected first claim to succeed, got %v %v", ok, err)
	}
	ok, err = s.Claim(ctx, "2023-01-15")
	if err != nil || ok {
		t.Fatalf("expected second claim to be rejected, got %v %v", ok, err)
	}
	if delivered, _ := s.Delivered(ctx, "2023-01-15"); !delivered {
		t.Fatalf("expected date to be delivered")
	}
	if delivered, _ := s.Delivered(ctx, "2023-01-16"); delivered {
		t.Fatalf("expected other date to be free")
	}
}

func TestMemoryStoreReleaseAllowsReclaim(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, _ = s.Claim(ctx, "2023-01-15")
	if err := s.Release(ctx, "2023-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := s.Claim(ctx, "2023-01-15"); !ok {
		t.Fatalf("expected claim after release")
	}
}
