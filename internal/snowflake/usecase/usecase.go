package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/snowid/internal/pkg/pkgerror"
	"github.com/shandysiswandi/snowid/internal/snowflake/entity"
	"github.com/shandysiswandi/snowid/internal/snowflake/generator"
)

// Generator is the slice of the id generator this usecase depends on.
type Generator interface {
	NextID() (entity.ID, error)
	WorkerID() int64
	DatacenterID() int64
	Timestamp() int64
	IdsGenerated() uint64
}

type Dependency struct {
	Generator Generator
}

type Usecase struct {
	gen Generator
}

func New(dep Dependency) *Usecase {
	return &Usecase{gen: dep.Generator}
}

// Generate mints the next identifier. A backwards-running wall clock is an
// environmental fault, so it surfaces as a retryable error rather than a
// client mistake.
func (u *Usecase) Generate(ctx context.Context) (GenerateResult, error) {
	if u.gen == nil {
		return GenerateResult{}, pkgerror.NewServer(errors.New("missing generator dependency"))
	}

	id, err := u.gen.NextID()
	if err != nil {
		if errors.Is(err, generator.ErrClockMovedBackwards) {
			slog.WarnContext(ctx, "rejecting id generation until the clock catches up", "error", err)
			return GenerateResult{}, pkgerror.NewUnavailable(err)
		}

		return GenerateResult{}, pkgerror.NewServer(err)
	}

	return GenerateResult{ID: id}, nil
}

// Timestamp reports the current wall clock in unix milliseconds. It never
// touches generation state.
func (u *Usecase) Timestamp(_ context.Context) TimestampResult {
	return TimestampResult{UnixMilli: u.gen.Timestamp()}
}

// Identity reports the (worker, datacenter) pair this instance serves ids
// for.
func (u *Usecase) Identity(_ context.Context) IdentityResult {
	return IdentityResult{
		WorkerID:     u.gen.WorkerID(),
		DatacenterID: u.gen.DatacenterID(),
	}
}

// Stats reports the instance identity together with its generation counter.
func (u *Usecase) Stats(_ context.Context) StatsResult {
	return StatsResult{
		WorkerID:     u.gen.WorkerID(),
		DatacenterID: u.gen.DatacenterID(),
		IdsGenerated: u.gen.IdsGenerated(),
	}
}
