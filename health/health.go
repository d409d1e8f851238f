// Package health keeps the gateway's view of both payment processors.
//
// A Monitor runs in one of two roles, fixed at startup. The Authority polls
// both processors and publishes the merged result to the shared store. An
// Observer only reads what an Authority published, so several gateways can
// share one poll cycle. Nothing checks that exactly one Authority exists.
package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/brunolapastina/rinha-de-backend-2025/repository"
	"github.com/brunolapastina/rinha-de-backend-2025/selector"
	"golang.org/x/sync/errgroup"
)

type Role int

const (
	RoleAuthority Role = iota + 1
	RoleObserver
)

func (r Role) String() string {
	switch r {
	case RoleAuthority:
		return "authority"
	case RoleObserver:
		return "observer"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole accepts the role names case-insensitively, with server and
// client as aliases of authority and observer.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "authority", "server":
		return RoleAuthority, nil
	case "observer", "client":
		return RoleObserver, nil
	default:
		return 0, fmt.Errorf("unknown health monitor role %q", s)
	}
}

const (
	DefaultInterval       = 5 * time.Second
	DefaultTimeout        = 2 * time.Second
	DefaultObserverDelay  = 100 * time.Millisecond
	defaultAuthorityDelay = 10 * time.Millisecond
	storeTimeout          = 2 * time.Second
)

// Checker is a processor that can report its health.
type Checker interface {
	ServiceHealth(ctx context.Context) (model.ServiceHealthResponse, error)
}

// Store is the shared slot the snapshot is published to and read from.
type Store interface {
	SetHealthData(ctx context.Context, snapshot model.HealthSnapshot) error
	GetHealthData(ctx context.Context) (model.HealthSnapshot, error)
}

type Options struct {
	// Interval between updates.
	Interval time.Duration
	// Timeout for each processor health call. Authority only.
	Timeout time.Duration
	// InitialDelay before the first update.
	InitialDelay time.Duration
}

type Monitor struct {
	role     Role
	store    Store
	def      Checker
	fallback Checker
	opts     Options

	current atomic.Pointer[model.HealthSnapshot]
	now     func() time.Time
	// storeTimeout bounds each read or write of the shared slot.
	storeTimeout time.Duration
}

// NewAuthority returns a Monitor that polls def and fallback and publishes
// the result to store.
func NewAuthority(store Store, def, fallback Checker, opts Options) *Monitor {
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = defaultAuthorityDelay
	}
	return newMonitor(RoleAuthority, store, def, fallback, opts)
}

// NewObserver returns a Monitor that copies whatever is published in store.
func NewObserver(store Store, opts Options) *Monitor {
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = DefaultObserverDelay
	}
	return newMonitor(RoleObserver, store, nil, nil, opts)
}

func newMonitor(role Role, store Store, def, fallback Checker, opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	m := &Monitor{
		role:     role,
		store:    store,
		def:      def,
		fallback: fallback,
		opts:     opts,
		now:      time.Now,

		storeTimeout: storeTimeout,
	}
	m.current.Store(&model.HealthSnapshot{})
	return m
}

func (m *Monitor) Role() Role {
	return m.role
}

// Snapshot returns the current view. Snapshots are replaced whole, never
// modified in place.
func (m *Monitor) Snapshot() model.HealthSnapshot {
	return *m.current.Load()
}

// Run updates the snapshot until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	slog.Info("Health monitor started", "role", m.role, "interval", m.opts.Interval)
	timer := time.NewTimer(m.opts.InitialDelay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Health monitor stopped", "role", m.role)
			return
		case <-timer.C:
			m.Update(ctx)
			timer.Reset(m.opts.Interval)
		}
	}
}

// Update runs a single cycle of the monitor's role.
func (m *Monitor) Update(ctx context.Context) {
	switch m.role {
	case RoleAuthority:
		m.poll(ctx)
	case RoleObserver:
		m.observe(ctx)
	}
}

func (m *Monitor) poll(ctx context.Context) {
	var (
		g                   errgroup.Group
		defHealth, fbHealth *model.ServiceHealthResponse
	)
	check := func(p model.Processor, c Checker, out **model.ServiceHealthResponse) {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, m.opts.Timeout)
			defer cancel()
			h, err := c.ServiceHealth(cctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Warn("Error checking payment processor health", "processor", p, "error", err)
				}
				return nil
			}
			*out = &h
			return nil
		})
	}
	check(model.ProcessorDefault, m.def, &defHealth)
	check(model.ProcessorFallback, m.fallback, &fbHealth)
	_ = g.Wait()

	next := m.Snapshot()
	if defHealth != nil {
		next.DefaultFailing = defHealth.Failing
		next.DefaultMinRespTime = defHealth.MinResponseTime
	}
	if fbHealth != nil {
		next.FallbackFailing = fbHealth.Failing
		next.FallbackMinRespTime = fbHealth.MinResponseTime
	}
	if defHealth != nil || fbHealth != nil {
		next.LastUpdate = m.now().UTC()
	}
	m.current.Store(&next)
	logSnapshot(m.role, next)

	pctx, cancel := context.WithTimeout(ctx, m.storeTimeout)
	defer cancel()
	if err := m.store.SetHealthData(pctx, next); err != nil && ctx.Err() == nil {
		slog.Warn("Error publishing payment processors health", "error", err)
	}
}

func (m *Monitor) observe(ctx context.Context) {
	gctx, cancel := context.WithTimeout(ctx, m.storeTimeout)
	defer cancel()
	snapshot, err := m.store.GetHealthData(gctx)
	if errors.Is(err, repository.ErrHealthNotFound) {
		slog.Warn("No health data available to observer")
		return
	}
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("Error getting payment processors health", "error", err)
		}
		return
	}
	m.current.Store(&snapshot)
	logSnapshot(m.role, snapshot)
}

func logSnapshot(role Role, s model.HealthSnapshot) {
	slog.Info("Health",
		"role", role,
		"defaultFailing", s.DefaultFailing,
		"defaultMinRespTime", s.DefaultMinRespTime,
		"fallbackFailing", s.FallbackFailing,
		"fallbackMinRespTime", s.FallbackMinRespTime,
		"preferred", selector.Select(s),
		"lastUpdate", s.LastUpdate,
	)
}
