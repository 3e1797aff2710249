package snowflake

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/snowid/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/snowid/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/snowid/internal/snowflake/entity"
	"github.com/shandysiswandi/snowid/internal/snowflake/generator"
	"github.com/shandysiswandi/snowid/internal/snowflake/inbound"
	"github.com/shandysiswandi/snowid/internal/snowflake/usecase"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	Generator *generator.Generator
}

func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Generator == nil {
		return nil, errors.New("snowflake module requires a generator")
	}

	uc := usecase.New(usecase.Dependency{Generator: dep.Generator})
	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	slog.Info("id generator ready",
		"worker_id", dep.Generator.WorkerID(),
		"datacenter_id", dep.Generator.DatacenterID(),
		"timestamp_shift", entity.TimestampShift,
		"sequence_bits", entity.SequenceBits,
	)

	var interval time.Duration
	if dep.Config != nil {
		interval = dep.Config.GetDuration("snowflake.stats_interval")
	}

	if interval <= 0 || dep.Goroutine == nil {
		return nil, nil
	}

	reporter := NewReporter(dep.Generator, interval)
	dep.Goroutine.Go(dep.Context, reporter.Run)

	return reporter.Stop, nil
}
