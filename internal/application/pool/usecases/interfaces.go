package usecases

import (
	"context"

	"secretsanta/internal/application/pool/dto"
	"secretsanta/internal/domain/pool"
)

// PoolMailer is the notification composer as seen by the use cases.
type PoolMailer interface {
	SendPoolMails(ctx context.Context, p *pool.Pool) error
	SendEntryMail(ctx context.Context, p *pool.Pool, e *pool.Entry) error
	SendAdminMatchSummary(ctx context.Context, p *pool.Pool) error
	SendForgotManageLinkMail(ctx context.Context, email string) (bool, error)
	SendReuseLinksMail(ctx context.Context, email string) (bool, error)
}

type GetManagePoolExecutor interface {
	Execute(ctx context.Context, query GetManagePoolQuery) (*dto.ManagePoolDTO, error)
}

type SendPoolMailsExecutor interface {
	Execute(ctx context.Context, cmd SendPoolMailsCommand) (*dto.ManagePoolDTO, error)
}

type ResendEntryMailExecutor interface {
	Execute(ctx context.Context, cmd ResendEntryMailCommand) error
}

type SendAdminMatchesExecutor interface {
	Execute(ctx context.Context, cmd SendAdminMatchesCommand) error
}

type ForgotManageLinkExecutor interface {
	Execute(ctx context.Context, cmd ForgotManageLinkCommand) (*dto.LinkMailResult, error)
}

type SendReuseLinksExecutor interface {
	Execute(ctx context.Context, cmd SendReuseLinksCommand) (*dto.LinkMailResult, error)
}

type GetReusePoolExecutor interface {
	Execute(ctx context.Context, query GetReusePoolQuery) (*dto.ReusePoolDTO, error)
}
