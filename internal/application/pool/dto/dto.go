package dto

import (
	"time"

	"secretsanta/internal/domain/pool"
	"secretsanta/internal/shared/mapper"
)

type EntryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsPoolAdmin bool   `json:"is_pool_admin"`
}

// ManagePoolDTO is what the owner sees on the manage page. Matches are never
// exposed here.
type ManagePoolDTO struct {
	ListURL    string     `json:"list_url"`
	OwnerName  string     `json:"owner_name"`
	OwnerEmail string     `json:"owner_email"`
	Locale     string     `json:"locale"`
	Message    string     `json:"message"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	Location   string     `json:"location,omitempty"`
	Sent       bool       `json:"sent"`
	SentDate   *time.Time `json:"sent_date,omitempty"`
	Entries    []EntryDTO `json:"entries"`
}

type ParticipantDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReusePoolDTO carries what is needed to prefill a new pool from an old one.
type ReusePoolDTO struct {
	OwnerName    string           `json:"owner_name"`
	OwnerEmail   string           `json:"owner_email"`
	Locale       string           `json:"locale"`
	Message      string           `json:"message"`
	Location     string           `json:"location,omitempty"`
	Participants []ParticipantDTO `json:"participants"`
}

// LinkMailResult reports whether a link mail went out.
type LinkMailResult struct {
	Sent bool `json:"sent"`
}

func ToManagePoolDTO(p *pool.Pool) *ManagePoolDTO {
	return &ManagePoolDTO{
		ListURL:    p.ListURL(),
		OwnerName:  p.OwnerName(),
		OwnerEmail: p.OwnerEmail(),
		Locale:     p.Locale(),
		Message:    p.Message(),
		EventDate:  p.EventDate(),
		Location:   p.Location(),
		Sent:       p.IsSent(),
		SentDate:   p.SentDate(),
		Entries:    mapper.MapSlice(p.Entries(), toEntryDTO),
	}
}

func toEntryDTO(e *pool.Entry) EntryDTO {
	return EntryDTO{
		ID:          e.ID(),
		Name:        e.Name(),
		Email:       e.Email(),
		IsPoolAdmin: e.IsPoolAdmin(),
	}
}

func ToReusePoolDTO(p *pool.Pool) *ReusePoolDTO {
	return &ReusePoolDTO{
		OwnerName:    p.OwnerName(),
		OwnerEmail:   p.OwnerEmail(),
		Locale:       p.Locale(),
		Message:      p.Message(),
		Location:     p.Location(),
		Participants: mapper.MapSlice(p.Entries(), func(e *pool.Entry) ParticipantDTO {
			return ParticipantDTO{Name: e.Name(), Email: e.Email()}
		}),
	}
}
