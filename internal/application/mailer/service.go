// Package mailer composes the transactional emails of a pool and hands them
// to a transport.
package mailer

import (
	"context"
	"fmt"
	"time"

	"secretsanta/internal/domain/pool"
	"secretsanta/internal/shared/logger"
)

const (
	routePoolManage = "pool_manage"
	routePoolReuse  = "pool_reuse"

	linkDateLayout = "02/01/2006"
)

// PoolLink is one entry of the link list in the forgot-link and reuse mails.
type PoolLink struct {
	Text string
	URL  string
}

// Service is the notification composer. It holds no per-call state, so the
// locale of every translation and render is passed explicitly.
type Service struct {
	store        PoolStore
	translator   Translator
	renderer     Renderer
	transport    Transport
	urls         URLGenerator
	adminAddress string
	logger       logger.Interface
	now          func() time.Time
}

type ServiceOption func(*Service)

// WithClock replaces time.Now as the source of the sent timestamp and the
// recency cutoffs.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	store PoolStore,
	translator Translator,
	renderer Renderer,
	transport Transport,
	urls URLGenerator,
	adminAddress string,
	logger logger.Interface,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		store:        store,
		translator:   translator,
		renderer:     renderer,
		transport:    transport,
		urls:         urls,
		adminAddress: adminAddress,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendPoolMails persists the sent timestamp and then mails every entry in
// order. The pool stays marked as sent when a mail fails halfway. A pool that
// was already sent yields pool.ErrPoolAlreadySent and no mail.
func (s *Service) SendPoolMails(ctx context.Context, p *pool.Pool) error {
	sentAt := s.now().UTC()

	if err := s.store.MarkSent(ctx, p.ID(), sentAt); err != nil {
		s.logger.Warnw("failed to mark pool as sent", "list_url", p.ListURL(), "error", err)
		return err
	}
	if err := p.MarkSent(sentAt); err != nil {
		return err
	}

	entries := p.Entries()
	for _, e := range entries {
		if err := s.SendEntryMail(ctx, p, e); err != nil {
			s.logger.Errorw("failed to send pool mail",
				"list_url", p.ListURL(),
				"entry_id", e.ID(),
				"error", err,
			)
			return err
		}
	}

	s.logger.Infow("pool mails sent", "list_url", p.ListURL(), "entries", len(entries))
	return nil
}

// SendEntryMail tells one participant who they are buying a gift for.
func (s *Service) SendEntryMail(ctx context.Context, p *pool.Pool, e *pool.Entry) error {
	locale := p.Locale()

	message := pool.SubstitutePlaceholders(p.Message(), pool.Placeholders{
		Name:          e.Name(),
		Administrator: p.OwnerName(),
	})
	data := map[string]any{
		"message": message,
		"entry":   e,
	}

	htmlBody, textBody, err := s.renderPair(locale, "emails/secretsanta", data)
	if err != nil {
		return err
	}

	return s.transport.Send(ctx, &Message{
		Subject:  s.translator.Translate(locale, "emails.secretsanta.subject"),
		From:     Address{Email: s.adminAddress, Name: p.OwnerName()},
		ReplyTo:  &Address{Email: p.OwnerEmail(), Name: p.OwnerName()},
		To:       Address{Email: e.Email(), Name: e.Name()},
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
}

// SendAdminMatchSummary mails the full match list to the pool owner.
func (s *Service) SendAdminMatchSummary(ctx context.Context, p *pool.Pool) error {
	locale := p.Locale()

	htmlBody, textBody, err := s.renderPair(locale, "emails/admin_matches", map[string]any{"pool": p})
	if err != nil {
		return err
	}

	if err := s.transport.Send(ctx, &Message{
		Subject:  s.translator.Translate(locale, "emails.admin_matches.subject"),
		From:     Address{Email: s.adminAddress, Name: s.translator.Translate(locale, "emails.sender")},
		To:       Address{Email: p.OwnerEmail(), Name: p.OwnerName()},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}); err != nil {
		return err
	}

	s.logger.Infow("admin match summary sent", "list_url", p.ListURL())
	return nil
}

// SendForgotManageLinkMail mails the manage links of every upcoming pool the
// address administers. It reports false, without mailing, when there is none.
func (s *Service) SendForgotManageLinkMail(ctx context.Context, email string) (bool, error) {
	results, err := s.store.FindAllAdminPools(ctx, email, pool.ManageLinkCutoff(s.now()))
	if err != nil {
		return false, fmt.Errorf("failed to find admin pools: %w", err)
	}

	return s.sendPoolLinks(ctx, email, results, poolLinksMail{
		linkKey:    "manage.title",
		route:      routePoolManage,
		template:   "emails/forgotlink",
		subjectKey: "emails.forgot_link.subject",
	})
}

// SendReuseLinksMail mails links for starting a new pool from any pool the
// address administered within the reuse window.
func (s *Service) SendReuseLinksMail(ctx context.Context, email string) (bool, error) {
	results, err := s.store.FindPoolsToReuse(ctx, email, pool.ReuseCutoff(s.now()))
	if err != nil {
		return false, fmt.Errorf("failed to find pools to reuse: %w", err)
	}

	return s.sendPoolLinks(ctx, email, results, poolLinksMail{
		linkKey:    "reuse.title",
		route:      routePoolReuse,
		template:   "emails/reuse",
		subjectKey: "emails.reuse.subject",
	})
}

type poolLinksMail struct {
	linkKey    string
	route      string
	template   string
	subjectKey string
}

// sendPoolLinks translates everything, link labels included, in the locale
// of the first (earliest) pool.
func (s *Service) sendPoolLinks(ctx context.Context, email string, results []pool.AdminPoolSummary, kind poolLinksMail) (bool, error) {
	if len(results) == 0 {
		s.logger.Infow("no pools found for link mail", "template", kind.template)
		return false, nil
	}

	locale := results[0].Locale

	links := make([]PoolLink, 0, len(results))
	for _, r := range results {
		text := s.translator.Translate(locale, kind.linkKey)
		if r.EventDate != nil {
			text += " (" + r.EventDate.Format(linkDateLayout) + ")"
		}

		url, err := s.urls.GenerateAbsoluteURL(kind.route, map[string]string{"listUrl": r.ListURL})
		if err != nil {
			return false, fmt.Errorf("failed to generate pool link: %w", err)
		}

		links = append(links, PoolLink{Text: text, URL: url})
	}

	htmlBody, textBody, err := s.renderPair(locale, kind.template, map[string]any{"poolLinks": links})
	if err != nil {
		return false, err
	}

	if err := s.transport.Send(ctx, &Message{
		Subject:  s.translator.Translate(locale, kind.subjectKey),
		From:     Address{Email: s.adminAddress, Name: s.translator.Translate(locale, "emails.sender")},
		To:       Address{Email: email},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}); err != nil {
		return false, err
	}

	s.logger.Infow("pool links mail sent", "template", kind.template, "pools", len(links))
	return true, nil
}

func (s *Service) renderPair(locale, base string, data map[string]any) (htmlBody, textBody string, err error) {
	htmlBody, err = s.renderer.Render(locale, base+".html", data)
	if err != nil {
		return "", "", err
	}
	textBody, err = s.renderer.Render(locale, base+".txt", data)
	if err != nil {
		return "", "", err
	}
	return htmlBody, textBody, nil
}
