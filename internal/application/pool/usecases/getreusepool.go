package usecases

import (
	"context"

	"secretsanta/internal/application/pool/dto"
	"secretsanta/internal/domain/pool"
	"secretsanta/internal/shared/logger"
)

type GetReusePoolQuery struct {
	ListURL string
}

type GetReusePoolUseCase struct {
	repo   pool.PoolRepository
	logger logger.Interface
}

func NewGetReusePoolUseCase(repo pool.PoolRepository, logger logger.Interface) *GetReusePoolUseCase {
	return &GetReusePoolUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetReusePoolUseCase) Execute(ctx context.Context, query GetReusePoolQuery) (*dto.ReusePoolDTO, error) {
	p, err := loadPool(ctx, uc.repo, query.ListURL)
	if err != nil {
		uc.logger.Warnw("failed to load pool for reuse", "list_url", query.ListURL, "error", err)
		return nil, err
	}

	return dto.ToReusePoolDTO(p), nil
}
