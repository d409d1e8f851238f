package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/brunolapastina/rinha-de-backend-2025/queue"
	"github.com/brunolapastina/rinha-de-backend-2025/selector"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize      = 100
	DefaultPaymentTimeout = 5 * time.Second
	DefaultStoreTimeout   = 2 * time.Second
)

// Processor is one downstream payment processor.
type Processor interface {
	SendPayment(ctx context.Context, req model.ProcessorRequest) error
	PurgePayments(ctx context.Context) error
}

// HealthSource provides the latest health snapshot.
type HealthSource interface {
	Snapshot() model.HealthSnapshot
}

// Store is the part of the transaction store the pool writes to.
type Store interface {
	AddTransaction(ctx context.Context, requestedAt time.Time, correlationID string, amount decimal.Decimal, processor model.Processor) error
	ClearAllTransactions(ctx context.Context) error
}

type Options struct {
	BatchSize int
	// Concurrency caps the goroutines used for one batch. Zero runs every
	// item of the batch at once.
	Concurrency int
	// StartFresh purges both processors and the transaction log before the
	// first batch.
	StartFresh     bool
	PaymentTimeout time.Duration
	StoreTimeout   time.Duration
}

// Pool drains the intake queue in batches. Every item of a batch is sent
// concurrently and the next batch is only taken once all of them finished.
// A failed send puts the request back in the queue, with no limit on the
// number of attempts and no delay between them.
type Pool struct {
	Queue      *queue.Queue
	Store      Store
	Health     HealthSource
	Processors map[model.Processor]Processor
	Options    Options

	stats stats
}

func NewPool(q *queue.Queue, store Store, health HealthSource, defaultProcessor, fallbackProcessor Processor, opts Options) *Pool {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.PaymentTimeout <= 0 {
		opts.PaymentTimeout = DefaultPaymentTimeout
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = DefaultStoreTimeout
	}
	return &Pool{
		Queue:  q,
		Store:  store,
		Health: health,
		Processors: map[model.Processor]Processor{
			model.ProcessorDefault:  defaultProcessor,
			model.ProcessorFallback: fallbackProcessor,
		},
		Options: opts,
	}
}

// Run processes batches until ctx is done. Sends already in flight finish
// on their own timeout; the queue is not drained.
func (p *Pool) Run(ctx context.Context) {
	if p.Options.StartFresh {
		p.reset(ctx)
	}

	slog.Info("Worker pool started", "batchSize", p.Options.BatchSize, "concurrency", p.Options.Concurrency)
	for {
		// TakeBatch hands out queued items even after cancellation
		if ctx.Err() != nil {
			slog.Info("Worker pool stopped")
			return
		}
		batch, err := p.Queue.TakeBatch(ctx, p.Options.BatchSize)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				slog.Error("Worker pool stopped on queue error", "error", err)
			}
			slog.Info("Worker pool stopped")
			return
		}
		p.processBatch(ctx, batch)
	}
}

func (p *Pool) reset(ctx context.Context) {
	slog.Info("Start fresh: purging payment processors and transaction log")
	for name, proc := range p.Processors {
		pctx, cancel := context.WithTimeout(ctx, p.Options.PaymentTimeout)
		if err := proc.PurgePayments(pctx); err != nil {
			slog.Error("Error purging payment processor", "processor", name, "error", err)
		}
		cancel()
	}
	sctx, cancel := context.WithTimeout(ctx, p.Options.StoreTimeout)
	defer cancel()
	if err := p.Store.ClearAllTransactions(sctx); err != nil {
		slog.Error("Error clearing transaction log", "error", err)
	}
}

func (p *Pool) processBatch(ctx context.Context, batch []model.PaymentRequest) {
	var g errgroup.Group
	if p.Options.Concurrency > 0 {
		g.SetLimit(p.Options.Concurrency)
	}
	for _, req := range batch {
		g.Go(func() error {
			p.handlePayment(ctx, req)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Pool) handlePayment(ctx context.Context, req model.PaymentRequest) {
	// in-flight calls are bounded by their own timeout, not by shutdown
	base := context.WithoutCancel(ctx)

	requestedAt := time.Now().UTC()
	target := selector.Select(p.Health.Snapshot())
	proc, ok := p.Processors[target]
	if !ok || proc == nil {
		p.stats.errors.Add(1)
		slog.Error("No client for selected processor", "processor", target)
		p.Queue.Enqueue(req)
		return
	}

	sendCtx, cancel := context.WithTimeout(base, p.Options.PaymentTimeout)
	start := time.Now()
	err := proc.SendPayment(sendCtx, model.NewProcessorRequest(req, requestedAt))
	elapsed := time.Since(start)
	cancel()

	counters := p.stats.forProcessor(target)
	if err != nil {
		p.stats.errors.Add(1)
		counters.failed.Add(1)
		slog.Debug("Payment failed, re-enqueued", "processor", target, "correlationId", req.CorrelationID, "error", err)
		p.Queue.Enqueue(req)
		return
	}
	counters.succeeded.Add(1)
	counters.latencyMs.Add(elapsed.Milliseconds())

	storeCtx, cancel := context.WithTimeout(base, p.Options.StoreTimeout)
	defer cancel()
	if err := p.Store.AddTransaction(storeCtx, requestedAt, req.CorrelationID, req.Amount, target); err != nil {
		slog.Error("Error saving transaction", "processor", target, "correlationId", req.CorrelationID, "error", err)
	}
}

type processorStats struct {
	succeeded atomic.Int64
	failed    atomic.Int64
	latencyMs atomic.Int64
}

type stats struct {
	def      processorStats
	fallback processorStats
	errors   atomic.Int64
}

func (s *stats) forProcessor(p model.Processor) *processorStats {
	if p == model.ProcessorFallback {
		return &s.fallback
	}
	return &s.def
}

type ProcessorStats struct {
	Succeeded int64
	Failed    int64
	// LatencyMs is the summed response time of successful sends.
	LatencyMs int64
}

func (s ProcessorStats) AverageLatency() time.Duration {
	if s.Succeeded == 0 {
		return 0
	}
	return time.Duration(s.LatencyMs/s.Succeeded) * time.Millisecond
}

type Stats struct {
	Default  ProcessorStats
	Fallback ProcessorStats
	Errors   int64
}

func (p *Pool) Stats() Stats {
	load := func(ps *processorStats) ProcessorStats {
		return ProcessorStats{
			Succeeded: ps.succeeded.Load(),
			Failed:    ps.failed.Load(),
			LatencyMs: ps.latencyMs.Load(),
		}
	}
	return Stats{
		Default:  load(&p.stats.def),
		Fallback: load(&p.stats.fallback),
		Errors:   p.stats.errors.Load(),
	}
}
