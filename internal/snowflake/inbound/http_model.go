package inbound

type IDResponse struct {
	ID string `json:"id"`
}

func (IDResponse) Message() string {
	return "id generated"
}

type TimestampResponse struct {
	Timestamp int64 `json:"timestamp"`
}

type WorkerIDResponse struct {
	WorkerID int64 `json:"worker_id"`
}

type DatacenterIDResponse struct {
	DatacenterID int64 `json:"datacenter_id"`
}

type StatsResponse struct {
	WorkerID     int64  `json:"worker_id"`
	DatacenterID int64  `json:"datacenter_id"`
	IdsGenerated uint64 `json:"ids_generated"`
}
