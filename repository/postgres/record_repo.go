package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/repository"
)

type recordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository returns a Postgres-backed RecordStore over the dashboard_records table.
func NewRecordRepository(pool *pgxpool.Pool) repository.RecordStore {
	return &recordRepository{pool: pool}
}

func (r *recordRepository) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `
	SELECT payload
	FROM dashboard_records
	WHERE key = $1
	`
	var payload string
	if err := r.pool.QueryRow(ctx, query, key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "postgres get "+key, err)
	}
	return []byte(payload), nil
}

func (r *recordRepository) Put(ctx context.Context, key string, value []byte) error {
	const query = `
	INSERT INTO dashboard_records (key, payload, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET payload = EXCLUDED.payload,
		updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, key, string(value)); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "postgres put "+key, err)
	}
	return nil
}

func (r *recordRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
