package usecases

import (
	"context"
	"errors"
	"fmt"

	"secretsanta/internal/domain/pool"
	apperrors "secretsanta/internal/shared/errors"
	"secretsanta/internal/shared/id"
)

// loadPool fetches a pool by list URL and maps a miss to a not-found AppError.
func loadPool(ctx context.Context, repo pool.PoolRepository, listURL string) (*pool.Pool, error) {
	if !id.IsValidListURL(listURL) {
		return nil, apperrors.NewNotFoundError("pool not found")
	}

	p, err := repo.GetByListURL(ctx, listURL)
	if err != nil {
		if errors.Is(err, pool.ErrPoolNotFound) {
			return nil, apperrors.NewNotFoundError("pool not found")
		}
		return nil, fmt.Errorf("failed to load pool: %w", err)
	}
	return p, nil
}
