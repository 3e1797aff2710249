package inbound

import (
	"context"
	"net/http"
)

type HTTPEndpoint struct {
	uc uc
}

// NextID serves freshly minted identifiers. The id travels as a decimal
// string because JSON numbers lose precision above 2^53.
func (h *HTTPEndpoint) NextID(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Generate(ctx)
	if err != nil {
		return nil, err
	}

	return IDResponse{ID: result.ID.String()}, nil
}

func (h *HTTPEndpoint) Timestamp(ctx context.Context, _ *http.Request) (any, error) {
	result := h.uc.Timestamp(ctx)

	return TimestampResponse{Timestamp: result.UnixMilli}, nil
}

func (h *HTTPEndpoint) WorkerID(ctx context.Context, _ *http.Request) (any, error) {
	result := h.uc.Identity(ctx)

	return WorkerIDResponse{WorkerID: result.WorkerID}, nil
}

func (h *HTTPEndpoint) DatacenterID(ctx context.Context, _ *http.Request) (any, error) {
	result := h.uc.Identity(ctx)

	return DatacenterIDResponse{DatacenterID: result.DatacenterID}, nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, _ *http.Request) (any, error) {
	result := h.uc.Stats(ctx)

	return StatsResponse{
		WorkerID:     result.WorkerID,
		DatacenterID: result.DatacenterID,
		IdsGenerated: result.IdsGenerated,
	}, nil
}
