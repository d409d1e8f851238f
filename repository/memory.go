package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/shopspring/decimal"
)

// MemoryRepository is a process local Store. Gateways using it do not share
// anything, so it only fits a single instance or tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []model.TransactionRecord
	health  *model.HealthSnapshot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) AddTransaction(_ context.Context, requestedAt time.Time, correlationID string, amount decimal.Decimal, processor model.Processor) error {
	rec := newRecord(requestedAt, correlationID, amount, processor)
	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) GetSummary(_ context.Context, from, to *time.Time) ([]model.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.TransactionRecord, 0, len(m.records))
	for _, rec := range m.records {
		if inRange(rec.RequestedAt, from, to) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out, nil
}

func (m *MemoryRepository) ClearAllTransactions(context.Context) error {
	m.mu.Lock()
	m.records = nil
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) SetHealthData(_ context.Context, snapshot model.HealthSnapshot) error {
	m.mu.Lock()
	m.health = &snapshot
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) GetHealthData(context.Context) (model.HealthSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.health == nil {
		return model.HealthSnapshot{}, ErrHealthNotFound
	}
	return *m.health, nil
}

func (m *MemoryRepository) Close() error {
	return nil
}
