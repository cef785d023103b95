package repository

import "context"

// Keys of the two persisted records.
const (
	KeyBookings  = "dashboardBookings"
	KeyEmployees = "dashboardEmployees"
)

// RecordStore is a durable key-value store holding whole serialized collections.
// Get returns domain.ErrRecordNotFound when the key has never been written.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
