package mailer

import (
	"context"
	"time"

	"secretsanta/internal/domain/pool"
)

// Translator resolves message keys for an explicit locale.
type Translator interface {
	Translate(locale, key string) string
}

// Renderer executes a named template with the translation function bound to locale.
type Renderer interface {
	Render(locale, name string, data map[string]any) (string, error)
}

type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// URLGenerator builds absolute URLs for named routes.
type URLGenerator interface {
	GenerateAbsoluteURL(route string, params map[string]string) (string, error)
}

// PoolStore is the persistence surface the composer needs.
type PoolStore interface {
	MarkSent(ctx context.Context, poolID uint, sentAt time.Time) error
	FindAllAdminPools(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error)
	FindPoolsToReuse(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error)
}
