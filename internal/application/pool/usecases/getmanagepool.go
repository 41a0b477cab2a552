package usecases

import (
	"context"

	"secretsanta/internal/application/pool/dto"
	"secretsanta/internal/domain/pool"
	"secretsanta/internal/shared/logger"
)

type GetManagePoolQuery struct {
	ListURL string
}

type GetManagePoolUseCase struct {
	repo   pool.PoolRepository
	logger logger.Interface
}

func NewGetManagePoolUseCase(repo pool.PoolRepository, logger logger.Interface) *GetManagePoolUseCase {
	return &GetManagePoolUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetManagePoolUseCase) Execute(ctx context.Context, query GetManagePoolQuery) (*dto.ManagePoolDTO, error) {
	p, err := loadPool(ctx, uc.repo, query.ListURL)
	if err != nil {
		uc.logger.Warnw("failed to load pool for manage page", "list_url", query.ListURL, "error", err)
		return nil, err
	}

	return dto.ToManagePoolDTO(p), nil
}
