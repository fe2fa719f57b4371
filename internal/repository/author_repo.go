package repository

import (
	"context"

	"github.com/frasehub/frasehub/internal/db"

	"gorm.io/gorm"
)

// AuthorRepository resolves author profiles. Authentication itself is
// external; this repository only maps login accounts to the author
// profile that acts as the viewer's engagement identity.
type AuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new repository bound to the given DB connection.
func NewAuthorRepository(database *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: database}
}

// GetByAccountID returns the author profile linked to a login account.
// Returns gorm.ErrRecordNotFound when the account has no profile.
func (r *AuthorRepository) GetByAccountID(ctx context.Context, accountID string) (db.Author, error) {
	var author db.Author
	err := r.db.WithContext(ctx).First(&author, "account_id = ?", accountID).Error
	return author, err
}

// GetByID fetches an author profile by its id.
func (r *AuthorRepository) GetByID(ctx context.Context, id string) (db.Author, error) {
	var author db.Author
	err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error
	return author, err
}

// Create inserts a new author profile.
func (r *AuthorRepository) Create(ctx context.Context, author *db.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}
