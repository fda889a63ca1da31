package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartcity/tourdifficulty/internal/domain"
)

// AreaRepository reads catalog entries from the areas table.
// The catalog is loaded once at startup; nothing is written back.
type AreaRepository struct {
	pool *pgxpool.Pool
}

// NewAreaRepository creates a new PostgreSQL area source
func NewAreaRepository(pool *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{pool: pool}
}

// Connect opens a pool and verifies it within timeout
func Connect(ctx context.Context, databaseURL string, timeout time.Duration) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid database url: %w", err)
	}
	cfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: failed to connect: %w", err)
	}
	return pool, nil
}

// LoadAreas returns every area ordered by sort_order, then id
func (r *AreaRepository) LoadAreas(ctx context.Context) ([]domain.Area, error) {
	query := `
		SELECT id, name, name_kr, region, category, base_popularity, emoji
		FROM areas
		ORDER BY sort_order, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query areas: %w", err)
	}

	areas, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Area])
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan area rows: %w", err)
	}

	return areas, nil
}

// Health checks database connectivity
func (r *AreaRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
