package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// testStore runs the Store contract against fresh stores built by newStore.
func testStore(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("Given mixed transactions When GetSummary called without bounds Then totals group by processor", func(t *testing.T) {
		s := newStore(t)
		now := time.Now()
		add(t, s, now, "19.9", model.ProcessorDefault)
		add(t, s, now, "4.7", model.ProcessorDefault)
		add(t, s, now, "18.8", model.ProcessorFallback)

		records, err := s.GetSummary(ctx, nil, nil)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		got := model.Summarize(records)

		if got.Default.TotalRequests != 2 || !got.Default.TotalAmount.Equal(decimal.RequireFromString("24.6")) {
			t.Errorf("Expected default {2, 24.6}, got {%d, %s}", got.Default.TotalRequests, got.Default.TotalAmount)
		}
		if got.Fallback.TotalRequests != 1 || !got.Fallback.TotalAmount.Equal(decimal.RequireFromString("18.8")) {
			t.Errorf("Expected fallback {1, 18.8}, got {%d, %s}", got.Fallback.TotalRequests, got.Fallback.TotalAmount)
		}
	})

	t.Run("Given a transaction When GetSummary called Then the record round trips", func(t *testing.T) {
		s := newStore(t)
		at := time.Now()
		id := uuid.NewString()
		if err := s.AddTransaction(ctx, at, id, decimal.RequireFromString("19.90"), model.ProcessorDefault); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}

		records, err := s.GetSummary(ctx, nil, nil)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}
		rec := records[0]
		if rec.CorrelationID != id {
			t.Errorf("Expected correlationId %s, got %s", id, rec.CorrelationID)
		}
		if !rec.Amount.Equal(decimal.RequireFromString("19.9")) {
			t.Errorf("Expected amount 19.9, got %s", rec.Amount)
		}
		if rec.Processor != model.ProcessorDefault {
			t.Errorf("Expected default processor, got %s", rec.Processor)
		}
		if rec.RequestedAt.UnixMilli() != at.UnixMilli() {
			t.Errorf("Expected requestedAt %d, got %d", at.UnixMilli(), rec.RequestedAt.UnixMilli())
		}
		if rec.ID == "" {
			t.Error("Expected record id to be set")
		}
	})

	t.Run("Given the same correlation id twice When GetSummary called Then both are kept", func(t *testing.T) {
		s := newStore(t)
		at := time.Now()
		for i := 0; i < 2; i++ {
			if err := s.AddTransaction(ctx, at, "dup", decimal.NewFromInt(10), model.ProcessorFallback); err != nil {
				t.Fatalf("AddTransaction failed: %v", err)
			}
		}

		records, err := s.GetSummary(ctx, nil, nil)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("Expected 2 records, got %d", len(records))
		}
	})

	t.Run("Given records over time When GetSummary called with a range Then only records inside are returned", func(t *testing.T) {
		s := newStore(t)
		ref := time.Now()
		add(t, s, ref.Add(-time.Minute), "10.9", model.ProcessorDefault)
		add(t, s, ref, "11.9", model.ProcessorFallback)
		add(t, s, ref.Add(time.Minute), "12.9", model.ProcessorDefault)

		from, to := ref.Add(-time.Second), ref.Add(time.Second)
		records, err := s.GetSummary(ctx, &from, &to)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 record, got %d", len(records))
		}
		if !records[0].Amount.Equal(decimal.RequireFromString("11.9")) || records[0].Processor != model.ProcessorFallback {
			t.Errorf("Unexpected record %+v", records[0])
		}

		records, err = s.GetSummary(ctx, &from, nil)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("Expected 2 records from an open upper bound, got %d", len(records))
		}

		records, err = s.GetSummary(ctx, nil, &to)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("Expected 2 records from an open lower bound, got %d", len(records))
		}
	})

	t.Run("Given transactions When ClearAllTransactions called Then the summary is empty", func(t *testing.T) {
		s := newStore(t)
		add(t, s, time.Now(), "19.9", model.ProcessorDefault)

		if err := s.ClearAllTransactions(ctx); err != nil {
			t.Fatalf("ClearAllTransactions failed: %v", err)
		}
		records, err := s.GetSummary(ctx, nil, nil)
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		got := model.Summarize(records)
		if got.Default.TotalRequests != 0 || !got.Default.TotalAmount.IsZero() ||
			got.Fallback.TotalRequests != 0 || !got.Fallback.TotalAmount.IsZero() {
			t.Errorf("Expected zero summary, got %+v", got)
		}
	})

	t.Run("Given no health data When GetHealthData called Then ErrHealthNotFound", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.GetHealthData(ctx); !errors.Is(err, ErrHealthNotFound) {
			t.Errorf("Expected ErrHealthNotFound, got %v", err)
		}
	})

	t.Run("Given health data set twice When GetHealthData called Then the last write wins", func(t *testing.T) {
		s := newStore(t)
		first := model.HealthSnapshot{LastUpdate: time.Now().UTC().Add(-time.Second), DefaultFailing: true}
		last := model.HealthSnapshot{LastUpdate: time.Now().UTC().Truncate(time.Millisecond), DefaultMinRespTime: 1200, FallbackFailing: true, FallbackMinRespTime: 30}
		if err := s.SetHealthData(ctx, first); err != nil {
			t.Fatalf("SetHealthData failed: %v", err)
		}
		if err := s.SetHealthData(ctx, last); err != nil {
			t.Fatalf("SetHealthData failed: %v", err)
		}

		got, err := s.GetHealthData(ctx)
		if err != nil {
			t.Fatalf("GetHealthData failed: %v", err)
		}
		if !got.LastUpdate.Equal(last.LastUpdate) || got.DefaultFailing != last.DefaultFailing ||
			got.DefaultMinRespTime != last.DefaultMinRespTime || got.FallbackFailing != last.FallbackFailing ||
			got.FallbackMinRespTime != last.FallbackMinRespTime {
			t.Errorf("Expected %+v, got %+v", last, got)
		}
	})
}

func add(t *testing.T, s Store, at time.Time, amount string, p model.Processor) {
	t.Helper()
	if err := s.AddTransaction(context.Background(), at, uuid.NewString(), decimal.RequireFromString(amount), p); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
}

func TestMemoryRepository(t *testing.T) {
	testStore(t, func(t *testing.T) Store {
		return NewMemoryRepository()
	})
}

func TestNewRejectsUnknownScheme(t *testing.T) {
	t.Parallel()

	if _, err := New(context.Background(), "mongodb://localhost:27017"); err == nil {
		t.Error("Expected error for unsupported scheme")
	}
	if _, err := New(context.Background(), ""); err == nil {
		t.Error("Expected error for empty url")
	}
}

func TestNewMemory(t *testing.T) {
	t.Parallel()

	s, err := New(context.Background(), "memory://")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := s.(*MemoryRepository); !ok {
		t.Errorf("Expected *MemoryRepository, got %T", s)
	}
}
