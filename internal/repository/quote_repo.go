package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/frasehub/frasehub/internal/db"

	"gorm.io/gorm"
)

// QuoteRepository provides data access methods for the Quote model:
// feed pages, permalink candidate sets and counter mutations.
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new repository bound to the given DB connection.
func NewQuoteRepository(database *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: database}
}

// visible narrows a query to feed-visible quotes: approved by moderation
// and not soft-deleted.
func (r *QuoteRepository) visible(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db.Quote{}).
		Where("quotes.is_approved = ? AND quotes.is_active = ?", true, true)
}

// FetchPage returns one feed page plus a hasMore flag.
//
// Empty search term: a single visibility-filtered query ordered by
// created_at DESC (id ASC breaks timestamp ties so repeated calls page
// stably), offset page*pageSize, limit pageSize. hasMore is true when
// the fetch filled the page.
//
// Non-empty search term: two independent queries under the same
// visibility filter and the same offset/limit: one matching the quote
// content, one matching the owning author's display name, both
// case-insensitive contains. The raw results are concatenated, deduped
// by id keeping the first occurrence, and re-sorted by created_at DESC.
// hasMore reflects whether the second raw result set filled the page;
// near page boundaries that is a conservative approximation, accepted
// instead of cursor bookkeeping across both source streams.
func (r *QuoteRepository) FetchPage(ctx context.Context, term string, page, pageSize int) ([]db.Quote, bool, error) {
	if page < 0 || pageSize <= 0 {
		return nil, false, nil
	}
	offset := page * pageSize

	term = strings.TrimSpace(term)
	if term == "" {
		var quotes []db.Quote
		err := r.visible(ctx).
			Order("quotes.created_at DESC, quotes.id ASC").
			Offset(offset).Limit(pageSize).
			Preload("Author").
			Find(&quotes).Error
		if err != nil {
			return nil, false, err
		}
		return quotes, len(quotes) == pageSize, nil
	}

	pattern := "%" + strings.ToLower(term) + "%"

	var byContent []db.Quote
	err := r.visible(ctx).
		Where("LOWER(quotes.content) LIKE ?", pattern).
		Order("quotes.created_at DESC, quotes.id ASC").
		Offset(offset).Limit(pageSize).
		Preload("Author").
		Find(&byContent).Error
	if err != nil {
		return nil, false, err
	}

	var byAuthor []db.Quote
	err = r.visible(ctx).
		Joins("JOIN authors ON authors.id = quotes.author_id").
		Where("LOWER(authors.name) LIKE ?", pattern).
		Order("quotes.created_at DESC, quotes.id ASC").
		Offset(offset).Limit(pageSize).
		Preload("Author").
		Find(&byAuthor).Error
	if err != nil {
		return nil, false, err
	}

	merged := mergeFeedResults(byContent, byAuthor)
	return merged, len(byAuthor) == pageSize, nil
}

// mergeFeedResults concatenates both match sets, drops duplicate ids
// keeping the first occurrence, and restores created_at DESC order
// (id ASC on ties).
func mergeFeedResults(first, second []db.Quote) []db.Quote {
	seen := make(map[string]struct{}, len(first)+len(second))
	merged := make([]db.Quote, 0, len(first)+len(second))
	for _, q := range append(append([]db.Quote{}, first...), second...) {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		merged = append(merged, q)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}

// ListVisible returns every feed-visible quote in the store's default
// order. Permalink resolution scans this set recomputing short codes;
// on a code collision the first match in this order wins.
func (r *QuoteRepository) ListVisible(ctx context.Context) ([]db.Quote, error) {
	var quotes []db.Quote
	err := r.visible(ctx).Preload("Author").Find(&quotes).Error
	return quotes, err
}

// GetByID fetches a single quote regardless of visibility.
func (r *QuoteRepository) GetByID(ctx context.Context, id string) (db.Quote, error) {
	var quote db.Quote
	err := r.db.WithContext(ctx).Preload("Author").First(&quote, "id = ?", id).Error
	return quote, err
}

// Create inserts a new quote. New quotes start pending moderation
// (is_approved=false) unless the caller says otherwise.
func (r *QuoteRepository) Create(ctx context.Context, quote *db.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

// Counter mutations are single atomic UPDATEs evaluated store-side, so
// concurrent toggles/views from independent viewers can't lose updates
// the way a read-modify-write sequence would.

// IncrementViews bumps views_count by exactly 1.
func (r *QuoteRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&db.Quote{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// IncrementShares bumps shares_count by exactly 1.
func (r *QuoteRepository) IncrementShares(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&db.Quote{}).
		Where("id = ?", id).
		UpdateColumn("shares_count", gorm.Expr("shares_count + 1")).Error
}

// IncrementLikes bumps likes_count by exactly 1.
func (r *QuoteRepository) IncrementLikes(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&db.Quote{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}

// DecrementLikes lowers likes_count by exactly 1, floored at 0.
func (r *QuoteRepository) DecrementLikes(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&db.Quote{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END")).Error
}

// LikesCount reads the denormalized like counter.
func (r *QuoteRepository) LikesCount(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Quote{}).
		Where("id = ?", id).
		Select("likes_count").
		Scan(&count).Error
	return count, err
}
