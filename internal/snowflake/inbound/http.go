package inbound

import (
	"context"

	"github.com/shandysiswandi/snowid/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/snowid/internal/snowflake/usecase"
)

type uc interface {
	Generate(ctx context.Context) (usecase.GenerateResult, error)
	Timestamp(ctx context.Context) usecase.TimestampResult
	Identity(ctx context.Context) usecase.IdentityResult
	Stats(ctx context.Context) usecase.StatsResult
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/id", end.NextID)
	r.GET("/timestamp", end.Timestamp)
	r.GET("/worker-id", end.WorkerID)
	r.GET("/datacenter-id", end.DatacenterID)
	r.GET("/stats", end.Stats)
}
