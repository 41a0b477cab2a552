package pool

import (
	"context"
	"time"
)

type PoolRepository interface {
	// Save persists a new pool together with its entries and matches.
	Save(ctx context.Context, p *Pool) error
	GetByListURL(ctx context.Context, listURL string) (*Pool, error)
	// MarkSent stores sentAt only if the pool has not been sent yet and
	// returns ErrPoolAlreadySent otherwise.
	MarkSent(ctx context.Context, poolID uint, sentAt time.Time) error
	// FindAllAdminPools lists pools administered by email with an event date
	// on or after since, ordered by event date ascending.
	FindAllAdminPools(ctx context.Context, email string, since time.Time) ([]AdminPoolSummary, error)
	// FindPoolsToReuse has the same shape as FindAllAdminPools and exists so
	// the two cutoffs can diverge.
	FindPoolsToReuse(ctx context.Context, email string, since time.Time) ([]AdminPoolSummary, error)
}
