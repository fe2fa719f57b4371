package repository

import (
	"context"

	"github.com/frasehub/frasehub/internal/db"

	"gorm.io/gorm"
)

// ReactionRepository provides data access for authenticated likes.
// A reaction row's existence IS the like state; there is no cached flag.
type ReactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new repository bound to the given DB connection.
func NewReactionRepository(database *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: database}
}

// Has reports whether the author currently likes the quote, by existence
// query against the composite key.
func (r *ReactionRepository) Has(ctx context.Context, quoteID, authorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Reaction{}).
		Where("quote_id = ? AND author_id = ?", quoteID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the reaction row for a like toggle-on.
func (r *ReactionRepository) Create(ctx context.Context, quoteID, authorID string) error {
	reaction := db.Reaction{QuoteID: quoteID, AuthorID: authorID}
	return r.db.WithContext(ctx).Create(&reaction).Error
}

// Delete removes the reaction row for a like toggle-off.
func (r *ReactionRepository) Delete(ctx context.Context, quoteID, authorID string) error {
	return r.db.WithContext(ctx).
		Where("quote_id = ? AND author_id = ?", quoteID, authorID).
		Delete(&db.Reaction{}).Error
}

// Count returns how many authenticated reactions a quote has. Used to
// reconcile the denormalized likes_count against row truth.
func (r *ReactionRepository) Count(ctx context.Context, quoteID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Reaction{}).
		Where("quote_id = ?", quoteID).
		Count(&count).Error
	return count, err
}
