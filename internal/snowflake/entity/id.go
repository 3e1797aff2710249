package entity

import (
	"strconv"
	"time"
)

// Epoch is the reference instant subtracted from wall-clock milliseconds
// before packing, 2019-01-01T00:00:00Z. It keeps the timestamp field small
// enough to share an int64 with the identity and sequence fields for decades.
const Epoch int64 = 1546272000000

const (
	WorkerIDBits     = 5
	DatacenterIDBits = 5
	SequenceBits     = 12

	MaxWorkerID     = -1 ^ (-1 << WorkerIDBits)
	MaxDatacenterID = -1 ^ (-1 << DatacenterIDBits)
	MaxSequence     = -1 ^ (-1 << SequenceBits)

	WorkerIDShift     = SequenceBits
	DatacenterIDShift = SequenceBits + WorkerIDBits
	TimestampShift    = SequenceBits + WorkerIDBits + DatacenterIDBits
)

// ID is a packed snowflake identifier. Most significant first: 41 bits of
// milliseconds since Epoch, 5 bits of datacenter id, 5 bits of worker id and
// a 12 bit per-millisecond sequence.
type ID int64

// NewID packs the four fields into an ID. elapsed counts milliseconds since
// Epoch, not since the unix epoch.
func NewID(elapsed, datacenterID, workerID, sequence int64) ID {
	return ID(elapsed<<TimestampShift |
		datacenterID<<DatacenterIDShift |
		workerID<<WorkerIDShift |
		sequence)
}

// Timestamp returns the moment the id was minted as unix milliseconds.
func (id ID) Timestamp() int64 {
	return int64(id)>>TimestampShift + Epoch
}

// Time returns the moment the id was minted.
func (id ID) Time() time.Time {
	return time.UnixMilli(id.Timestamp())
}

// DatacenterID returns the datacenter identity encoded in the id.
func (id ID) DatacenterID() int64 {
	return int64(id) >> DatacenterIDShift & MaxDatacenterID
}

// WorkerID returns the worker identity encoded in the id.
func (id ID) WorkerID() int64 {
	return int64(id) >> WorkerIDShift & MaxWorkerID
}

// Sequence returns the per-millisecond sequence number encoded in the id.
func (id ID) Sequence() int64 {
	return int64(id) & MaxSequence
}

// Int64 returns the raw packed value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the id in decimal, the form served to clients.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
