package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/mailru/easyjson"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	transactionsKey = "transactions:logs"
	healthKey       = "health:data"

	fireAndForgetTimeout = 2 * time.Second
)

// RedisRepository keeps the log in a sorted set scored by requestedAt in
// epoch milliseconds and the health snapshot in a plain string key.
type RedisRepository struct {
	RedisClient *redis.Client
	// FireAndForget makes AddTransaction return before Redis answers. A
	// failed append is only logged.
	FireAndForget bool

	pending sync.WaitGroup
}

func NewRedisRepository(ctx context.Context, redisURL string) (*RedisRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisRepository{RedisClient: client}, nil
}

func scoreBound(t *time.Time, open string) string {
	if t == nil {
		return open
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func (r *RedisRepository) AddTransaction(ctx context.Context, requestedAt time.Time, correlationID string, amount decimal.Decimal, processor model.Processor) error {
	rec := newRecord(requestedAt, correlationID, amount, processor)
	member, err := easyjson.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}
	z := redis.Z{Score: float64(rec.RequestedAt.UnixMilli()), Member: member}

	if r.FireAndForget {
		r.pending.Add(1)
		go func() {
			defer r.pending.Done()
			actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fireAndForgetTimeout)
			defer cancel()
			if err := r.RedisClient.ZAdd(actx, transactionsKey, z).Err(); err != nil {
				slog.Error("Error adding transaction", "correlationId", correlationID, "error", err)
			}
		}()
		return nil
	}

	if err := r.RedisClient.ZAdd(ctx, transactionsKey, z).Err(); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}
	return nil
}

func (r *RedisRepository) GetSummary(ctx context.Context, from, to *time.Time) ([]model.TransactionRecord, error) {
	members, err := r.RedisClient.ZRangeByScore(ctx, transactionsKey, &redis.ZRangeBy{
		Min: scoreBound(from, "-inf"),
		Max: scoreBound(to, "+inf"),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	records := make([]model.TransactionRecord, 0, len(members))
	for _, m := range members {
		var rec model.TransactionRecord
		if err := easyjson.Unmarshal([]byte(m), &rec); err != nil {
			slog.Warn("Skipping undecodable transaction", "member", m, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *RedisRepository) ClearAllTransactions(ctx context.Context) error {
	if err := r.RedisClient.Del(ctx, transactionsKey).Err(); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

func (r *RedisRepository) SetHealthData(ctx context.Context, snapshot model.HealthSnapshot) error {
	body, err := easyjson.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode health data: %w", err)
	}
	if err := r.RedisClient.Set(ctx, healthKey, body, 0).Err(); err != nil {
		return fmt.Errorf("failed to store health data: %w", err)
	}
	return nil
}

func (r *RedisRepository) GetHealthData(ctx context.Context) (model.HealthSnapshot, error) {
	var snapshot model.HealthSnapshot
	body, err := r.RedisClient.Get(ctx, healthKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return snapshot, ErrHealthNotFound
	}
	if err != nil {
		return snapshot, fmt.Errorf("failed to read health data: %w", err)
	}
	if err := easyjson.Unmarshal(body, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to decode health data: %w", err)
	}
	return snapshot, nil
}

// Close waits for fire-and-forget appends still in flight.
func (r *RedisRepository) Close() error {
	r.pending.Wait()
	return r.RedisClient.Close()
}
