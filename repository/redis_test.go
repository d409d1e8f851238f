package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/shopspring/decimal"
)

func TestRedisRepository(t *testing.T) {
	testStore(t, func(t *testing.T) Store {
		mr := miniredis.RunT(t)
		r, err := NewRedisRepository(context.Background(), "redis://"+mr.Addr())
		if err != nil {
			t.Fatalf("NewRedisRepository failed: %v", err)
		}
		t.Cleanup(func() { r.Close() })
		return r
	})
}

func TestNewBareAddressIsRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := New(context.Background(), mr.Addr())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*RedisRepository); !ok {
		t.Errorf("Expected *RedisRepository, got %T", s)
	}
}

func TestRedisRepositoryUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisRepository(context.Background(), "redis://"+addr); err == nil {
		t.Error("Expected error connecting to a closed server")
	}
}

func TestRedisRepositoryFireAndForget(t *testing.T) {
	mr := miniredis.RunT(t)
	r, err := NewRedisRepository(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewRedisRepository failed: %v", err)
	}
	r.FireAndForget = true

	ctx, cancel := context.WithCancel(context.Background())
	at := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		if err := r.AddTransaction(ctx, at, id, decimal.RequireFromString("10.5"), model.ProcessorDefault); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}
	cancel()

	// Close drains the pending appends, even with the caller's ctx gone.
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	members, err := mr.ZMembers(transactionsKey)
	if err != nil {
		t.Fatalf("ZMembers failed: %v", err)
	}
	if len(members) != 3 {
		t.Errorf("Expected 3 stored transactions, got %d", len(members))
	}
}
