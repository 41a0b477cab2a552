package mailer

import (
	"context"
	"errors"
	"time"

	"secretsanta/internal/domain/pool"
)

type mockStore struct {
	MarkSentFunc          func(ctx context.Context, poolID uint, sentAt time.Time) error
	FindAllAdminPoolsFunc func(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error)
	FindPoolsToReuseFunc  func(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error)
}

func (m *mockStore) MarkSent(ctx context.Context, poolID uint, sentAt time.Time) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, poolID, sentAt)
	}
	return nil
}

func (m *mockStore) FindAllAdminPools(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	if m.FindAllAdminPoolsFunc != nil {
		return m.FindAllAdminPoolsFunc(ctx, email, since)
	}
	return nil, nil
}

func (m *mockStore) FindPoolsToReuse(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	if m.FindPoolsToReuseFunc != nil {
		return m.FindPoolsToReuseFunc(ctx, email, since)
	}
	return nil, nil
}

// recordingTranslator returns "<locale>:<key>" and remembers every locale it saw.
type recordingTranslator struct {
	locales []string
}

func (t *recordingTranslator) Translate(locale, key string) string {
	t.locales = append(t.locales, locale)
	return locale + ":" + key
}

type renderCall struct {
	locale string
	name   string
	data   map[string]any
}

type recordingRenderer struct {
	calls []renderCall
	err   error
}

func (r *recordingRenderer) Render(locale, name string, data map[string]any) (string, error) {
	r.calls = append(r.calls, renderCall{locale: locale, name: name, data: data})
	if r.err != nil {
		return "", r.err
	}
	return name + "@" + locale, nil
}

type recordingTransport struct {
	sent    []*Message
	failOn  int
	failErr error
}

func (t *recordingTransport) Send(_ context.Context, msg *Message) error {
	if t.failErr != nil && len(t.sent) == t.failOn {
		return t.failErr
	}
	t.sent = append(t.sent, msg)
	return nil
}

type mockURLGenerator struct{}

func (mockURLGenerator) GenerateAbsoluteURL(route string, params map[string]string) (string, error) {
	listURL, ok := params["listUrl"]
	if !ok {
		return "", errors.New("missing listUrl")
	}
	return "https://santa.test/" + route + "/" + listURL, nil
}
