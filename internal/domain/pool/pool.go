package pool

import (
	"fmt"
	"strings"
	"time"

	"secretsanta/internal/shared/id"
)

// MinEntries is the smallest pool that can be matched and sent.
const MinEntries = 3

// Pool is a gift-exchange event owned by one administrator.
type Pool struct {
	id         uint
	listURL    string
	ownerName  string
	ownerEmail string
	locale     string
	message    string
	eventDate  *time.Time
	location   string
	sentDate   *time.Time
	createdAt  time.Time
	entries    []*Entry
}

func NewPool(ownerName, ownerEmail, locale, message string, eventDate *time.Time, location string) (*Pool, error) {
	ownerName = strings.TrimSpace(ownerName)
	ownerEmail = strings.TrimSpace(ownerEmail)
	if ownerName == "" {
		return nil, fmt.Errorf("owner name is required")
	}
	if ownerEmail == "" {
		return nil, fmt.Errorf("owner email is required")
	}
	if locale == "" {
		return nil, fmt.Errorf("locale is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	listURL, err := id.NewListURL()
	if err != nil {
		return nil, fmt.Errorf("failed to generate list url: %w", err)
	}

	return &Pool{
		listURL:    listURL,
		ownerName:  ownerName,
		ownerEmail: ownerEmail,
		locale:     locale,
		message:    message,
		eventDate:  eventDate,
		location:   location,
		createdAt:  time.Now().UTC(),
		entries:    []*Entry{},
	}, nil
}

func ReconstructPool(
	id uint,
	listURL string,
	ownerName string,
	ownerEmail string,
	locale string,
	message string,
	eventDate *time.Time,
	location string,
	sentDate *time.Time,
	createdAt time.Time,
	entries []*Entry,
) (*Pool, error) {
	if id == 0 {
		return nil, fmt.Errorf("pool ID cannot be zero")
	}
	if listURL == "" {
		return nil, fmt.Errorf("list url is required")
	}
	if entries == nil {
		entries = []*Entry{}
	}

	return &Pool{
		id:         id,
		listURL:    listURL,
		ownerName:  ownerName,
		ownerEmail: ownerEmail,
		locale:     locale,
		message:    message,
		eventDate:  eventDate,
		location:   location,
		sentDate:   sentDate,
		createdAt:  createdAt,
		entries:    entries,
	}, nil
}

func (p *Pool) ID() uint {
	return p.id
}

func (p *Pool) ListURL() string {
	return p.listURL
}

func (p *Pool) OwnerName() string {
	return p.ownerName
}

func (p *Pool) OwnerEmail() string {
	return p.ownerEmail
}

func (p *Pool) Locale() string {
	return p.locale
}

// Message is the free-text mail body with (NAME) and (ADMINISTRATOR) placeholders.
func (p *Pool) Message() string {
	return p.message
}

func (p *Pool) EventDate() *time.Time {
	return p.eventDate
}

func (p *Pool) Location() string {
	return p.location
}

func (p *Pool) SentDate() *time.Time {
	return p.sentDate
}

func (p *Pool) CreatedAt() time.Time {
	return p.createdAt
}

// Entries returns the participants in registration order.
func (p *Pool) Entries() []*Entry {
	entries := make([]*Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

func (p *Pool) IsSent() bool {
	return p.sentDate != nil
}

// IsMatched reports whether every entry has been assigned a recipient.
func (p *Pool) IsMatched() bool {
	if len(p.entries) == 0 {
		return false
	}
	for _, e := range p.entries {
		if e.match == nil {
			return false
		}
	}
	return true
}

func (p *Pool) EntryByID(entryID uint) (*Entry, error) {
	for _, e := range p.entries {
		if e.id == entryID {
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (p *Pool) AddEntry(e *Entry) error {
	if p.IsSent() {
		return ErrPoolAlreadySent
	}
	for _, existing := range p.entries {
		if strings.EqualFold(existing.email, e.email) {
			return fmt.Errorf("entry with email %s already exists in pool", e.email)
		}
	}
	e.poolID = p.id
	p.entries = append(p.entries, e)
	return nil
}

// MarkSent stamps the send time. It can happen only once.
func (p *Pool) MarkSent(at time.Time) error {
	if p.sentDate != nil {
		return ErrPoolAlreadySent
	}
	sent := at.UTC()
	p.sentDate = &sent
	return nil
}

func (p *Pool) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("pool ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pool ID cannot be zero")
	}
	p.id = id
	for _, e := range p.entries {
		e.poolID = id
	}
	return nil
}
