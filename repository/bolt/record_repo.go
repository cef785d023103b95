package bolt

import (
	"context"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/infrastructure/kv"
	"github.com/fastygo/dashboard/repository"
)

type recordRepository struct {
	store *kv.Store
}

// NewRecordRepository exposes a Bolt file as a RecordStore.
func NewRecordRepository(store *kv.Store) repository.RecordStore {
	return &recordRepository{store: store}
}

func (r *recordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	value, ok, err := r.store.Get(key)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "bolt get "+key, err)
	}
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return value, nil
}

func (r *recordRepository) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.store.Put(key, value); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "bolt put "+key, err)
	}
	return nil
}

func (r *recordRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.store.Size(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "bolt ping", err)
	}
	return nil
}
