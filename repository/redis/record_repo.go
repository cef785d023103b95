package redis

import (
	"context"
	"errors"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

// DefaultPrefix namespaces the dashboard records inside a shared Redis database.
const DefaultPrefix = "dashboard:"

type recordRepository struct {
	client *redislib.Client
	prefix string
}

// NewRecordRepository creates a Redis-backed record store. Records never expire.
func NewRecordRepository(client *redislib.Client, prefix string) repository.RecordStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &recordRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *recordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "redis get "+key, err)
	}
	return result, nil
}

func (r *recordRepository) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "redis set "+key, err)
	}
	return nil
}

func (r *recordRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *recordRepository) key(key string) string {
	return fmt.Sprintf("%s%s", r.prefix, key)
}
