package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Author is the public writing profile linked to an external login
// account. Engagement identity for authenticated viewers is the author
// profile, never the account itself.
type Author struct {
	ID         string `gorm:"primaryKey;size:36"`
	AccountID  string `gorm:"uniqueIndex;size:36;not null"`
	Name       string `gorm:"size:128;not null"`
	Bio        string `gorm:"type:text"`
	AvatarURL  string `gorm:"size:255"`
	IsVerified bool   `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (a *Author) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Quote is the core content record.
//
// Visibility: a quote appears in any read path only while
// is_approved = true AND is_active = true. New quotes start pending
// (is_approved = false); rejection flips is_active to false and keeps
// the row (soft delete).
//
// Counters are denormalized onto the row and mutated with store-side
// atomic UPDATEs (see repository.QuoteRepository); they are never reset.
type Quote struct {
	ID          string `gorm:"primaryKey;size:36"`
	AuthorID    string `gorm:"size:36;not null;index"`
	Author      Author `gorm:"foreignKey:AuthorID"`
	Content     string `gorm:"type:text;not null"`
	Notes       string `gorm:"type:text"`
	ViewsCount  int64  `gorm:"not null;default:0"`
	LikesCount  int64  `gorm:"not null;default:0"`
	SharesCount int64  `gorm:"not null;default:0"`
	IsApproved  bool   `gorm:"not null;default:false;index:idx_quotes_visible,priority:1"`
	IsActive    bool   `gorm:"not null;default:true;index:idx_quotes_visible,priority:2"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (q *Quote) BeforeCreate(_ *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Reaction is an authenticated like. Row existence IS the like state:
// the composite PK guarantees at most one reaction per (quote, author)
// pair, and a page reload re-derives the flag from an existence query.
type Reaction struct {
	QuoteID   string    `gorm:"primaryKey;size:36"`
	AuthorID  string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// QuoteView is one registered impression. Views are deliberately not
// deduplicated per viewer; AuthorID is null for anonymous viewers.
type QuoteView struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	QuoteID   string  `gorm:"size:36;not null;index"`
	AuthorID  *string `gorm:"size:36"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// QuoteShare records a share action and the platform it targeted.
type QuoteShare struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	QuoteID   string  `gorm:"size:36;not null;index"`
	AuthorID  *string `gorm:"size:36"`
	Platform  string  `gorm:"size:32;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// SiteSetting is a key/value row managed by the admin panel. The server
// reads the feed-related keys once at startup into the typed config.
type SiteSetting struct {
	Key   string `gorm:"primaryKey;size:64;column:key"`
	Value string `gorm:"size:255;not null"`
}

func (SiteSetting) TableName() string { return "site_settings" }
