// Package queue holds accepted payment requests until a worker takes them.
package queue

import (
	"context"
	"sync"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
)

// Queue is an unbounded multi-producer multi-consumer buffer. Enqueue never
// blocks; TakeBatch blocks until something is available. There is no
// backpressure: a slow consumer side makes it grow without limit.
type Queue struct {
	mu    sync.Mutex
	items []model.PaymentRequest
	ready chan struct{}
}

func New() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

func (q *Queue) Enqueue(req model.PaymentRequest) {
	q.mu.Lock()
	q.items = append(q.items, req)
	q.mu.Unlock()
	q.signal()
}

// TakeBatch waits until at least one item is queued and returns up to maxSize
// of them. It returns ctx.Err() if ctx is done first.
func (q *Queue) TakeBatch(ctx context.Context, maxSize int) ([]model.PaymentRequest, error) {
	if maxSize < 1 {
		maxSize = 1
	}
	for {
		q.mu.Lock()
		if n := len(q.items); n > 0 {
			if n > maxSize {
				n = maxSize
			}
			batch := make([]model.PaymentRequest, n)
			copy(batch, q.items)
			q.items = q.items[n:]
			left := len(q.items)
			if left == 0 {
				// drop the backing array so a drained burst can be collected
				q.items = nil
			}
			q.mu.Unlock()
			if left > 0 {
				q.signal()
			}
			return batch, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.ready:
		}
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
