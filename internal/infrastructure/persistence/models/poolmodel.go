package models

import (
	"time"

	"gorm.io/datatypes"
)

type PoolModel struct {
	ID         uint            `gorm:"primaryKey"`
	ListURL    string          `gorm:"column:list_url;uniqueIndex;size:32;not null"`
	OwnerName  string          `gorm:"size:255;not null"`
	OwnerEmail string          `gorm:"size:255;not null"`
	Locale     string          `gorm:"size:10;not null"`
	Message    string          `gorm:"type:text"`
	EventDate  *datatypes.Date `gorm:"type:date;index"`
	Location   string          `gorm:"size:255"`
	SentDate   *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
}

func (PoolModel) TableName() string {
	return "pools"
}

type EntryModel struct {
	ID          uint   `gorm:"primaryKey"`
	PoolID      uint   `gorm:"not null;index"`
	Name        string `gorm:"size:255;not null"`
	Email       string `gorm:"size:255;not null;index"`
	URL         string `gorm:"column:url;uniqueIndex;size:36;not null"`
	IsPoolAdmin bool   `gorm:"not null;default:false"`
	MatchID     *uint
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
}

func (EntryModel) TableName() string {
	return "entries"
}

// AdminPoolRow is the projection scanned by the admin-pools queries.
type AdminPoolRow struct {
	ListURL   string          `gorm:"column:list_url"`
	EventDate *datatypes.Date `gorm:"column:event_date"`
	Locale    string          `gorm:"column:locale"`
	Location  string          `gorm:"column:location"`
}
