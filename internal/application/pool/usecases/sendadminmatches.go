package usecases

import (
	"context"
	"fmt"

	"secretsanta/internal/domain/pool"
	apperrors "secretsanta/internal/shared/errors"
	"secretsanta/internal/shared/logger"
)

type SendAdminMatchesCommand struct {
	ListURL string
}

type SendAdminMatchesUseCase struct {
	repo   pool.PoolRepository
	mailer PoolMailer
	logger logger.Interface
}

func NewSendAdminMatchesUseCase(repo pool.PoolRepository, mailer PoolMailer, logger logger.Interface) *SendAdminMatchesUseCase {
	return &SendAdminMatchesUseCase{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (uc *SendAdminMatchesUseCase) Execute(ctx context.Context, cmd SendAdminMatchesCommand) error {
	uc.logger.Infow("executing send admin matches use case", "list_url", cmd.ListURL)

	p, err := loadPool(ctx, uc.repo, cmd.ListURL)
	if err != nil {
		return err
	}

	if !p.IsSent() {
		return apperrors.NewValidationError("pool has not been sent yet")
	}

	if err := uc.mailer.SendAdminMatchSummary(ctx, p); err != nil {
		uc.logger.Errorw("failed to send admin match summary", "list_url", cmd.ListURL, "error", err)
		return fmt.Errorf("failed to send admin match summary: %w", err)
	}

	return nil
}
