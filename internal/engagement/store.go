// Package engagement tracks per-viewer likes and per-record view/share
// counters.
//
// Authenticated like state is a reaction row (existence checked on every
// read, never cached as a flag). Anonymous like state is a liked-quote
// set keyed by an opaque device token, held by an injected persistence
// capability: it is device-scoped, non-portable and non-authoritative.
//
// Counters are denormalized onto the quote row and mutated through
// store-side atomic UPDATEs, so concurrent viewers cannot lose updates;
// within one toggle the row mutation is always awaited before the
// counter mutation.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frasehub/frasehub/internal/repository"

	"gorm.io/gorm"
)

// AnonLikes is the injected key-value capability persisting anonymous
// liked-quote sets per device token.
type AnonLikes interface {
	AnonLikeAdd(ctx context.Context, deviceID, quoteID string) error
	AnonLikeRemove(ctx context.Context, deviceID, quoteID string) error
	AnonLikeContains(ctx context.Context, deviceID, quoteID string) (bool, error)
}

// CountCache caches denormalized like counts; the quote row is the
// fallback on a miss.
type CountCache interface {
	GetLikeCount(ctx context.Context, quoteID string) (int64, bool, error)
	SetLikeCount(ctx context.Context, quoteID string, count int64) error
	BumpLikeCount(ctx context.Context, quoteID string, delta int64) error
}

// Store implements like toggling, reaction checks and view/share
// registration on top of the repositories and the cache tier.
type Store struct {
	quotes    *repository.QuoteRepository
	reactions *repository.ReactionRepository
	authors   *repository.AuthorRepository
	events    *repository.EventRepository

	anon   AnonLikes
	counts CountCache
	log    *slog.Logger
}

// NewStore wires a Store over the given DB connection and injected
// cache capabilities.
func NewStore(database *gorm.DB, counts CountCache, anon AnonLikes, log *slog.Logger) *Store {
	return &Store{
		quotes:    repository.NewQuoteRepository(database),
		reactions: repository.NewReactionRepository(database),
		authors:   repository.NewAuthorRepository(database),
		events:    repository.NewEventRepository(database),
		anon:      anon,
		counts:    counts,
		log:       log,
	}
}

// ResolveViewer maps a login account to its author profile identity.
// Accounts without a profile get ErrProfileNotFound, never a silent
// anonymous fallback.
func (s *Store) ResolveViewer(ctx context.Context, accountID string) (Viewer, error) {
	author, err := s.authors.GetByAccountID(ctx, accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Viewer{}, ErrProfileNotFound
	}
	if err != nil {
		return Viewer{}, fmt.Errorf("resolve viewer: %w", err)
	}
	return AuthorViewer(author.ID), nil
}

// ToggleLike flips the viewer's like on a quote and returns the new
// state plus the quote's like count after the toggle.
//
// Toggling off deletes the like (row or set membership), then lowers
// likes_count by 1 floored at 0; toggling on inserts, then raises it
// by 1. Each step awaits the previous one, but nothing serializes
// against other viewers - the atomic counter UPDATE is what keeps
// concurrent toggles from losing updates.
func (s *Store) ToggleLike(ctx context.Context, quoteID string, viewer Viewer) (bool, int64, error) {
	if !viewer.Resolved() {
		return false, 0, ErrViewerRequired
	}
	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return false, 0, err
	}

	liked, err := s.HasReacted(ctx, quoteID, viewer)
	if err != nil {
		return false, 0, err
	}

	if liked {
		if viewer.Authenticated() {
			err = s.reactions.Delete(ctx, quoteID, viewer.AuthorID)
		} else {
			err = s.anon.AnonLikeRemove(ctx, viewer.DeviceID, quoteID)
		}
		if err != nil {
			return false, 0, fmt.Errorf("remove like: %w", err)
		}
		if err := s.quotes.DecrementLikes(ctx, quoteID); err != nil {
			return false, 0, fmt.Errorf("decrement likes: %w", err)
		}
		if err := s.counts.BumpLikeCount(ctx, quoteID, -1); err != nil {
			s.log.Warn("like count cache bump failed", "quote_id", quoteID, "err", err)
		}
	} else {
		if viewer.Authenticated() {
			err = s.reactions.Create(ctx, quoteID, viewer.AuthorID)
		} else {
			err = s.anon.AnonLikeAdd(ctx, viewer.DeviceID, quoteID)
		}
		if err != nil {
			return false, 0, fmt.Errorf("add like: %w", err)
		}
		if err := s.quotes.IncrementLikes(ctx, quoteID); err != nil {
			return false, 0, fmt.Errorf("increment likes: %w", err)
		}
		if err := s.counts.BumpLikeCount(ctx, quoteID, 1); err != nil {
			s.log.Warn("like count cache bump failed", "quote_id", quoteID, "err", err)
		}
	}

	count, err := s.quotes.LikesCount(ctx, quoteID)
	if err != nil {
		return !liked, 0, fmt.Errorf("read likes count: %w", err)
	}
	return !liked, count, nil
}

// HasReacted reports whether the viewer currently likes the quote.
// An unresolved viewer is never an error: it reads as "not liked" so
// the like button can render before identity resolution completes.
func (s *Store) HasReacted(ctx context.Context, quoteID string, viewer Viewer) (bool, error) {
	switch {
	case viewer.Authenticated():
		return s.reactions.Has(ctx, quoteID, viewer.AuthorID)
	case viewer.Anonymous():
		return s.anon.AnonLikeContains(ctx, viewer.DeviceID, quoteID)
	default:
		return false, nil
	}
}

// RegisterView records one impression: a view event row (viewer
// optional) plus an atomic views_count increment. Views are not
// deduplicated per viewer; every qualifying mount counts.
func (s *Store) RegisterView(ctx context.Context, quoteID string, viewer Viewer) (int64, error) {
	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return 0, err
	}
	if err := s.events.CreateView(ctx, quoteID, viewer.authorIDPtr()); err != nil {
		return 0, fmt.Errorf("create view event: %w", err)
	}
	if err := s.quotes.IncrementViews(ctx, quoteID); err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return 0, err
	}
	return quote.ViewsCount, nil
}

// RegisterShare records a share to the given platform and bumps
// shares_count.
func (s *Store) RegisterShare(ctx context.Context, quoteID, platform string, viewer Viewer) (int64, error) {
	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return 0, err
	}
	if err := s.events.CreateShare(ctx, quoteID, platform, viewer.authorIDPtr()); err != nil {
		return 0, fmt.Errorf("create share event: %w", err)
	}
	if err := s.quotes.IncrementShares(ctx, quoteID); err != nil {
		return 0, fmt.Errorf("increment shares: %w", err)
	}
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return 0, err
	}
	return quote.SharesCount, nil
}

// CountLikes returns a quote's like count, cache-first with the
// denormalized column as fallback. A fresh value backfills the cache.
func (s *Store) CountLikes(ctx context.Context, quoteID string) (int64, error) {
	if count, ok, err := s.counts.GetLikeCount(ctx, quoteID); err == nil && ok {
		return count, nil
	} else if err != nil {
		s.log.Warn("like count cache read failed", "quote_id", quoteID, "err", err)
	}

	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return 0, err
	}
	count, err := s.quotes.LikesCount(ctx, quoteID)
	if err != nil {
		return 0, err
	}
	if err := s.counts.SetLikeCount(ctx, quoteID, count); err != nil {
		s.log.Warn("like count cache write failed", "quote_id", quoteID, "err", err)
	}
	return count, nil
}

// ReconcileLikes recomputes likes_count for a quote from the reaction
// rows plus nothing else. Anonymous likes have no rows, so this is an
// audit helper for authenticated engagement, not a correction pass over
// the public counter.
func (s *Store) ReconcileLikes(ctx context.Context, quoteID string) (int64, error) {
	return s.reactions.Count(ctx, quoteID)
}
