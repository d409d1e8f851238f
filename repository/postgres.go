package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mailru/easyjson"
	"github.com/shopspring/decimal"
)

// PostgresRepository stores the log in a transactions table and the health
// snapshot in a single row table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, connString string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	cfg.MinConns = 1
	cfg.MaxConns = 16

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}
	if err := r.createTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			correlation_id TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			processor TEXT NOT NULL,
			requested_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_requested_at ON transactions (requested_at)`,
		`CREATE TABLE IF NOT EXISTS health_data (
			id SMALLINT PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, q := range queries {
		if _, err := r.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) AddTransaction(ctx context.Context, requestedAt time.Time, correlationID string, amount decimal.Decimal, processor model.Processor) error {
	rec := newRecord(requestedAt, correlationID, amount, processor)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO transactions (id, correlation_id, amount, processor, requested_at) VALUES ($1, $2, $3::numeric, $4, $5)`,
		rec.ID, rec.CorrelationID, rec.Amount.String(), string(rec.Processor), rec.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetSummary(ctx context.Context, from, to *time.Time) ([]model.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, correlation_id, amount::text, processor, requested_at
		   FROM transactions
		  WHERE ($1::timestamptz IS NULL OR requested_at >= $1)
		    AND ($2::timestamptz IS NULL OR requested_at <= $2)
		  ORDER BY requested_at`,
		msBound(from), msBound(to))
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TransactionRecord, error) {
		var (
			rec       model.TransactionRecord
			amount    string
			processor string
		)
		if err := row.Scan(&rec.ID, &rec.CorrelationID, &amount, &processor, &rec.RequestedAt); err != nil {
			return rec, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return rec, err
		}
		rec.Amount = d
		rec.Processor = model.Processor(processor)
		rec.RequestedAt = rec.RequestedAt.UTC()
		return rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return records, nil
}

func (r *PostgresRepository) ClearAllTransactions(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetHealthData(ctx context.Context, snapshot model.HealthSnapshot) error {
	body, err := easyjson.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode health data: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO health_data (id, payload, updated_at) VALUES (1, $1, now())
		 ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		string(body))
	if err != nil {
		return fmt.Errorf("failed to store health data: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetHealthData(ctx context.Context) (model.HealthSnapshot, error) {
	var (
		snapshot model.HealthSnapshot
		body     string
	)
	err := r.pool.QueryRow(ctx, `SELECT payload FROM health_data WHERE id = 1`).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return snapshot, ErrHealthNotFound
	}
	if err != nil {
		return snapshot, fmt.Errorf("failed to read health data: %w", err)
	}
	if err := easyjson.Unmarshal([]byte(body), &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to decode health data: %w", err)
	}
	return snapshot, nil
}

func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// msBound truncates a bound to whole milliseconds, the resolution records
// are stored with.
func msBound(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := time.UnixMilli(t.UnixMilli()).UTC()
	return &v
}
