package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"secretsanta/internal/domain/pool"
	"secretsanta/internal/shared/logger"
)

type mockPoolRepository struct {
	SaveFunc              func(ctx context.Context, p *pool.Pool) error
	GetByListURLFunc      func(ctx context.Context, listURL string) (*pool.Pool, error)
	MarkSentFunc          func(ctx context.Context, poolID uint, sentAt time.Time) error
	FindAllAdminPoolsFunc func(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error)
	FindPoolsToReuseFunc  func(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error)
}

func (m *mockPoolRepository) Save(ctx context.Context, p *pool.Pool) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPoolRepository) GetByListURL(ctx context.Context, listURL string) (*pool.Pool, error) {
	if m.GetByListURLFunc != nil {
		return m.GetByListURLFunc(ctx, listURL)
	}
	return nil, pool.ErrPoolNotFound
}

func (m *mockPoolRepository) MarkSent(ctx context.Context, poolID uint, sentAt time.Time) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, poolID, sentAt)
	}
	return nil
}

func (m *mockPoolRepository) FindAllAdminPools(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	if m.FindAllAdminPoolsFunc != nil {
		return m.FindAllAdminPoolsFunc(ctx, email, since)
	}
	return nil, nil
}

func (m *mockPoolRepository) FindPoolsToReuse(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	if m.FindPoolsToReuseFunc != nil {
		return m.FindPoolsToReuseFunc(ctx, email, since)
	}
	return nil, nil
}

type mockPoolMailer struct {
	SendPoolMailsFunc            func(ctx context.Context, p *pool.Pool) error
	SendEntryMailFunc            func(ctx context.Context, p *pool.Pool, e *pool.Entry) error
	SendAdminMatchSummaryFunc    func(ctx context.Context, p *pool.Pool) error
	SendForgotManageLinkMailFunc func(ctx context.Context, email string) (bool, error)
	SendReuseLinksMailFunc       func(ctx context.Context, email string) (bool, error)
}

func (m *mockPoolMailer) SendPoolMails(ctx context.Context, p *pool.Pool) error {
	if m.SendPoolMailsFunc != nil {
		return m.SendPoolMailsFunc(ctx, p)
	}
	return nil
}

func (m *mockPoolMailer) SendEntryMail(ctx context.Context, p *pool.Pool, e *pool.Entry) error {
	if m.SendEntryMailFunc != nil {
		return m.SendEntryMailFunc(ctx, p, e)
	}
	return nil
}

func (m *mockPoolMailer) SendAdminMatchSummary(ctx context.Context, p *pool.Pool) error {
	if m.SendAdminMatchSummaryFunc != nil {
		return m.SendAdminMatchSummaryFunc(ctx, p)
	}
	return nil
}

func (m *mockPoolMailer) SendForgotManageLinkMail(ctx context.Context, email string) (bool, error) {
	if m.SendForgotManageLinkMailFunc != nil {
		return m.SendForgotManageLinkMailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockPoolMailer) SendReuseLinksMail(ctx context.Context, email string) (bool, error) {
	if m.SendReuseLinksMailFunc != nil {
		return m.SendReuseLinksMailFunc(ctx, email)
	}
	return false, nil
}

// newTestPool builds a persisted-looking pool with n entries. When matched is
// set every entry gives to the next one.
func newTestPool(t *testing.T, n int, matched bool) *pool.Pool {
	p, err := pool.NewPool("Alice", "alice@example.com", "en", "Hi (NAME)", nil, "Office")
	require.NoError(t, err)

	names := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}
	for i := 0; i < n; i++ {
		e, err := pool.NewEntry(names[i], names[i]+"@example.com", i == 0)
		require.NoError(t, err)
		require.NoError(t, p.AddEntry(e))
	}
	if matched {
		entries := p.Entries()
		for i, e := range entries {
			require.NoError(t, e.SetMatch(entries[(i+1)%len(entries)]))
		}
	}
	require.NoError(t, p.SetID(1))
	for i, e := range p.Entries() {
		require.NoError(t, e.SetID(uint(i+1)))
	}
	return p
}

func repoReturning(p *pool.Pool) *mockPoolRepository {
	return &mockPoolRepository{
		GetByListURLFunc: func(ctx context.Context, listURL string) (*pool.Pool, error) {
			if listURL != p.ListURL() {
				return nil, pool.ErrPoolNotFound
			}
			return p, nil
		},
	}
}

var nopLogger = logger.Nop()
