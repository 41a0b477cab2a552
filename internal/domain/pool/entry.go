package pool

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a participant of a pool.
type Entry struct {
	id          uint
	poolID      uint
	name        string
	email       string
	url         string
	isPoolAdmin bool
	match       *Entry
	createdAt   time.Time
}

func NewEntry(name, email string, isPoolAdmin bool) (*Entry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("entry name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("entry name exceeds maximum length of 255 characters")
	}
	if email == "" {
		return nil, fmt.Errorf("entry email is required")
	}

	return &Entry{
		name:        name,
		email:       email,
		url:         uuid.NewString(),
		isPoolAdmin: isPoolAdmin,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	poolID uint,
	name string,
	email string,
	url string,
	isPoolAdmin bool,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if url == "" {
		return nil, fmt.Errorf("entry url is required")
	}

	return &Entry{
		id:          id,
		poolID:      poolID,
		name:        name,
		email:       email,
		url:         url,
		isPoolAdmin: isPoolAdmin,
		createdAt:   createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) PoolID() uint {
	return e.poolID
}

func (e *Entry) Name() string {
	return e.name
}

func (e *Entry) Email() string {
	return e.email
}

// URL is the entry's personal access token.
func (e *Entry) URL() string {
	return e.url
}

func (e *Entry) IsPoolAdmin() bool {
	return e.isPoolAdmin
}

// Match is the entry this participant buys a gift for, nil until matched.
func (e *Entry) Match() *Entry {
	return e.match
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// SetMatch records the assignment produced by the matching step.
func (e *Entry) SetMatch(other *Entry) error {
	if other == nil {
		return fmt.Errorf("match cannot be nil")
	}
	if other == e || (e.id != 0 && other.id == e.id) {
		return fmt.Errorf("entry cannot be matched with itself")
	}
	if e.poolID != other.poolID {
		return fmt.Errorf("entries belong to different pools")
	}
	e.match = other
	return nil
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
