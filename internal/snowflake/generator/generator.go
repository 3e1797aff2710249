package generator

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shandysiswandi/snowid/internal/snowflake/entity"
)

var (
	// ErrInvalidIdentity reports a worker or datacenter id outside the 5-bit
	// range the id layout reserves for it.
	ErrInvalidIdentity = errors.New("identity out of range")

	// ErrClockMovedBackwards reports a wall clock reading earlier than the
	// last minted millisecond. Callers may retry once the clock catches up.
	ErrClockMovedBackwards = errors.New("clock moved backwards")
)

// Config carries the identity of a Generator and optional overrides.
type Config struct {
	WorkerID     int64
	DatacenterID int64

	// Clock defaults to the system clock when nil.
	Clock Clock
}

// Generator mints snowflake ids for a single (worker, datacenter) identity.
// It is safe for concurrent use; every NextID call runs under one critical
// section so the (timestamp, sequence) pair is read and advanced atomically.
type Generator struct {
	workerID     int64
	datacenterID int64
	clock        Clock

	mu            sync.Mutex
	lastTimestamp int64
	sequence      int64

	idsGenerated atomic.Uint64
}

// New validates the identity and returns a ready generator. Both ids must be
// within [0, 31]; uniqueness of the pair across running instances is the
// operator's responsibility.
func New(cfg Config) (*Generator, error) {
	if cfg.WorkerID < 0 || cfg.WorkerID > entity.MaxWorkerID {
		return nil, fmt.Errorf("worker id %d not in [0, %d]: %w", cfg.WorkerID, entity.MaxWorkerID, ErrInvalidIdentity)
	}

	if cfg.DatacenterID < 0 || cfg.DatacenterID > entity.MaxDatacenterID {
		return nil, fmt.Errorf("datacenter id %d not in [0, %d]: %w", cfg.DatacenterID, entity.MaxDatacenterID, ErrInvalidIdentity)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}

	return &Generator{
		workerID:      cfg.WorkerID,
		datacenterID:  cfg.DatacenterID,
		clock:         clock,
		lastTimestamp: -1,
	}, nil
}

// NextID returns the next identifier in this instance's time-ordered series.
// It fails only when the wall clock runs behind the last minted millisecond,
// and leaves all state untouched in that case so a later call succeeds once
// the clock catches up.
func (g *Generator) NextID() (entity.ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now().UnixMilli()
	if now < g.lastTimestamp {
		return 0, fmt.Errorf("refusing requests until %d: %w", g.lastTimestamp, ErrClockMovedBackwards)
	}

	if now == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & entity.MaxSequence
		if g.sequence == 0 {
			// 4096 ids minted within this millisecond; wait out the rest of it.
			now = g.untilNextMillis(g.lastTimestamp)
		}
	} else {
		g.sequence = 0
	}

	g.lastTimestamp = now
	g.idsGenerated.Add(1)

	return entity.NewID(now-entity.Epoch, g.datacenterID, g.workerID, g.sequence), nil
}

// untilNextMillis blocks until the clock passes last and returns the fresh
// reading. Bounded by wall-clock progression, so at most about a millisecond.
func (g *Generator) untilNextMillis(last int64) int64 {
	now := g.clock.Now().UnixMilli()
	for now <= last {
		time.Sleep(time.Millisecond / 8)
		now = g.clock.Now().UnixMilli()
	}

	return now
}

// WorkerID returns the configured worker identity.
func (g *Generator) WorkerID() int64 {
	return g.workerID
}

// DatacenterID returns the configured datacenter identity.
func (g *Generator) DatacenterID() int64 {
	return g.datacenterID
}

// Timestamp returns the current wall clock in unix milliseconds. It reads no
// generator state and never blocks on the critical section.
func (g *Generator) Timestamp() int64 {
	return g.clock.Now().UnixMilli()
}

// IdsGenerated returns how many ids this instance has minted since start.
func (g *Generator) IdsGenerated() uint64 {
	return g.idsGenerated.Load()
}
