package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"secretsanta/internal/application/pool/dto"
	apperrors "secretsanta/internal/shared/errors"
	"secretsanta/internal/shared/logger"
	"secretsanta/internal/shared/utils"
)

type ForgotManageLinkCommand struct {
	Email string `validate:"required,email,max=255"`
}

type SendReuseLinksCommand struct {
	Email string `validate:"required,email,max=255"`
}

func validateCommand(v *validator.Validate, cmd any) error {
	if err := v.Struct(cmd); err != nil {
		return apperrors.NewValidationError("a valid email address is required", err.Error())
	}
	return nil
}

type ForgotManageLinkUseCase struct {
	mailer    PoolMailer
	validator *validator.Validate
	logger    logger.Interface
}

func NewForgotManageLinkUseCase(mailer PoolMailer, logger logger.Interface) *ForgotManageLinkUseCase {
	return &ForgotManageLinkUseCase{
		mailer:    mailer,
		validator: validator.New(),
		logger:    logger,
	}
}

func (uc *ForgotManageLinkUseCase) Execute(ctx context.Context, cmd ForgotManageLinkCommand) (*dto.LinkMailResult, error) {
	cmd.Email = strings.TrimSpace(cmd.Email)
	if err := validateCommand(uc.validator, cmd); err != nil {
		return nil, err
	}

	sent, err := uc.mailer.SendForgotManageLinkMail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to send forgot link mail", "error", err)
		return nil, fmt.Errorf("failed to send forgot link mail: %w", err)
	}

	uc.logger.Infow("forgot link request handled", "email", utils.MaskEmail(cmd.Email), "sent", sent)
	return &dto.LinkMailResult{Sent: sent}, nil
}

type SendReuseLinksUseCase struct {
	mailer    PoolMailer
	validator *validator.Validate
	logger    logger.Interface
}

func NewSendReuseLinksUseCase(mailer PoolMailer, logger logger.Interface) *SendReuseLinksUseCase {
	return &SendReuseLinksUseCase{
		mailer:    mailer,
		validator: validator.New(),
		logger:    logger,
	}
}

func (uc *SendReuseLinksUseCase) Execute(ctx context.Context, cmd SendReuseLinksCommand) (*dto.LinkMailResult, error) {
	cmd.Email = strings.TrimSpace(cmd.Email)
	if err := validateCommand(uc.validator, cmd); err != nil {
		return nil, err
	}

	sent, err := uc.mailer.SendReuseLinksMail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to send reuse links mail", "error", err)
		return nil, fmt.Errorf("failed to send reuse links mail: %w", err)
	}

	uc.logger.Infow("reuse links request handled", "email", utils.MaskEmail(cmd.Email), "sent", sent)
	return &dto.LinkMailResult{Sent: sent}, nil
}
