package usecase

import "github.com/shandysiswandi/snowid/internal/snowflake/entity"

type GenerateResult struct {
	ID entity.ID
}

type TimestampResult struct {
	UnixMilli int64
}

type IdentityResult struct {
	WorkerID     int64
	DatacenterID int64
}

type StatsResult struct {
	WorkerID     int64
	DatacenterID int64
	IdsGenerated uint64
}
