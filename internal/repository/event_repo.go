package repository

import (
	"context"

	"github.com/frasehub/frasehub/internal/db"

	"gorm.io/gorm"
)

// EventRepository records engagement events: one row per registered view
// or share. Events are append-only and never deduplicated per viewer.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new repository bound to the given DB connection.
func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{db: database}
}

// CreateView inserts a view event. authorID is nil for anonymous viewers.
func (r *EventRepository) CreateView(ctx context.Context, quoteID string, authorID *string) error {
	view := db.QuoteView{QuoteID: quoteID, AuthorID: authorID}
	return r.db.WithContext(ctx).Create(&view).Error
}

// CreateShare inserts a share event for the given platform.
func (r *EventRepository) CreateShare(ctx context.Context, quoteID, platform string, authorID *string) error {
	share := db.QuoteShare{QuoteID: quoteID, Platform: platform, AuthorID: authorID}
	return r.db.WithContext(ctx).Create(&share).Error
}
