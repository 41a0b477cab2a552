package usecases

import (
	"context"
	"errors"
	"fmt"

	"secretsanta/internal/application/pool/dto"
	"secretsanta/internal/domain/pool"
	apperrors "secretsanta/internal/shared/errors"
	"secretsanta/internal/shared/logger"
)

type SendPoolMailsCommand struct {
	ListURL string
}

type SendPoolMailsUseCase struct {
	repo   pool.PoolRepository
	mailer PoolMailer
	logger logger.Interface
}

func NewSendPoolMailsUseCase(repo pool.PoolRepository, mailer PoolMailer, logger logger.Interface) *SendPoolMailsUseCase {
	return &SendPoolMailsUseCase{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (uc *SendPoolMailsUseCase) Execute(ctx context.Context, cmd SendPoolMailsCommand) (*dto.ManagePoolDTO, error) {
	uc.logger.Infow("executing send pool mails use case", "list_url", cmd.ListURL)

	p, err := loadPool(ctx, uc.repo, cmd.ListURL)
	if err != nil {
		return nil, err
	}

	if p.IsSent() {
		return nil, apperrors.NewConflictError("pool has already been sent")
	}
	if n := len(p.Entries()); n < pool.MinEntries {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("a pool needs at least %d participants", pool.MinEntries),
			fmt.Sprintf("pool has %d", n),
		)
	}
	if !p.IsMatched() {
		return nil, apperrors.NewValidationError("pool has not been matched yet")
	}

	if err := uc.mailer.SendPoolMails(ctx, p); err != nil {
		if errors.Is(err, pool.ErrPoolAlreadySent) {
			uc.logger.Warnw("pool was sent concurrently", "list_url", cmd.ListURL)
			return nil, apperrors.NewConflictError("pool has already been sent")
		}
		uc.logger.Errorw("failed to send pool mails", "list_url", cmd.ListURL, "error", err)
		return nil, fmt.Errorf("failed to send pool mails: %w", err)
	}

	uc.logger.Infow("pool mails sent successfully", "list_url", cmd.ListURL)
	return dto.ToManagePoolDTO(p), nil
}
