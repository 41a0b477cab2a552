package usecases

import (
	"context"
	"fmt"

	"secretsanta/internal/domain/pool"
	apperrors "secretsanta/internal/shared/errors"
	"secretsanta/internal/shared/logger"
)

type ResendEntryMailCommand struct {
	ListURL string
	EntryID uint
}

type ResendEntryMailUseCase struct {
	repo   pool.PoolRepository
	mailer PoolMailer
	logger logger.Interface
}

func NewResendEntryMailUseCase(repo pool.PoolRepository, mailer PoolMailer, logger logger.Interface) *ResendEntryMailUseCase {
	return &ResendEntryMailUseCase{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (uc *ResendEntryMailUseCase) Execute(ctx context.Context, cmd ResendEntryMailCommand) error {
	uc.logger.Infow("executing resend entry mail use case", "list_url", cmd.ListURL, "entry_id", cmd.EntryID)

	p, err := loadPool(ctx, uc.repo, cmd.ListURL)
	if err != nil {
		return err
	}

	if !p.IsSent() {
		return apperrors.NewValidationError("pool has not been sent yet")
	}

	entry, err := p.EntryByID(cmd.EntryID)
	if err != nil {
		return apperrors.NewNotFoundError("entry not found")
	}

	if err := uc.mailer.SendEntryMail(ctx, p, entry); err != nil {
		uc.logger.Errorw("failed to resend entry mail", "list_url", cmd.ListURL, "entry_id", cmd.EntryID, "error", err)
		return fmt.Errorf("failed to resend entry mail: %w", err)
	}

	return nil
}
