package snowflake

import (
	"context"
	"log/slog"
	"time"
)

// StatsSource exposes the counter the reporter periodically logs.
type StatsSource interface {
	IdsGenerated() uint64
}

// Reporter logs generation throughput at a fixed interval so operators can
// watch an instance without a metrics stack.
type Reporter struct {
	source   StatsSource
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewReporter builds a reporter. The interval must be positive; callers are
// expected to skip the reporter entirely when reporting is disabled.
func NewReporter(source StatsSource, interval time.Duration) *Reporter {
	return &Reporter{
		source:   source,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run loops until Stop is called or the context is canceled. It is meant to
// be scheduled on the application's goroutine manager.
func (r *Reporter) Run(ctx context.Context) error {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var last uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.stop:
			return nil
		case <-ticker.C:
			total := r.source.IdsGenerated()
			slog.InfoContext(ctx, "id generation stats",
				"ids_generated", total,
				"since_last_report", total-last,
			)
			last = total
		}
	}
}

// Stop signals Run to exit and waits for it, bounded by ctx.
func (r *Reporter) Stop(ctx context.Context) error {
	close(r.stop)

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
