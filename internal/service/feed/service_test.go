package feed_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frasehub/frasehub/internal/app"
	"github.com/frasehub/frasehub/internal/cache"
	"github.com/frasehub/frasehub/internal/config"
	"github.com/frasehub/frasehub/internal/db"
	pb "github.com/frasehub/frasehub/internal/proto/feed"
	"github.com/frasehub/frasehub/internal/service/feed"
	"github.com/frasehub/frasehub/internal/shortcode"
)

//
// Test helpers
//

// seedFeedData wipes the DB and inserts a deterministic dataset.
//
// Dataset:
//   - Authors: Machado (account-machado, verified), Clarice (account-clarice)
//   - 12 visible quotes, newest first: q00..q11 (q00 newest). Machado owns
//     the even ones, Clarice the odd ones. q03's content contains "liberdade".
//   - 1 pending quote and 1 soft-deleted quote that must never surface.
func seedFeedData(t *testing.T, gdb *gorm.DB) (machado, clarice db.Author, visible []db.Quote) {
	t.Helper()

	for _, table := range []string{"reactions", "quote_views", "quote_shares", "quotes", "authors"} {
		require.NoError(t, gdb.Exec("DELETE FROM "+table).Error)
	}

	machado = db.Author{AccountID: "account-machado", Name: "Machado de Assis", IsVerified: true}
	require.NoError(t, gdb.Create(&machado).Error)
	clarice = db.Author{AccountID: "account-clarice", Name: "Clarice Lispector"}
	require.NoError(t, gdb.Create(&clarice).Error)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 12; i++ {
		owner := machado
		if i%2 == 1 {
			owner = clarice
		}
		content := fmt.Sprintf("frase numero %02d", i)
		if i == 3 {
			content = "a liberdade é pouco"
		}
		quote := db.Quote{
			AuthorID:   owner.ID,
			Content:    content,
			IsApproved: true,
			IsActive:   true,
			CreatedAt:  base.Add(-time.Duration(i) * time.Minute),
		}
		require.NoError(t, gdb.Create(&quote).Error)
		visible = append(visible, quote)
	}

	pending := db.Quote{AuthorID: machado.ID, Content: "pendente", IsApproved: false, IsActive: true}
	require.NoError(t, gdb.Create(&pending).Error)
	rejected := db.Quote{AuthorID: machado.ID, Content: "rejeitada", IsApproved: true, IsActive: false}
	require.NoError(t, gdb.Create(&rejected).Error)

	return machado, clarice, visible
}

// setupService spins up an in-memory SQLite DB, applies migrations,
// seeds test data, starts a miniredis, and wires everything into a
// FeedService instance.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) (*feed.Service, *gorm.DB, []db.Quote) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&db.Author{}, &db.Quote{}, &db.Reaction{}, &db.QuoteView{}, &db.QuoteShare{}, &db.SiteSetting{}))

	_, _, visible := seedFeedData(t, gdb)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Feed.PageSize = 10
	cfg.Ads.Frequency = 3
	cfg.View.Delay = 50 * time.Millisecond

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(gdb, redisCache, cfg, logger)
	return feed.NewFeedService(appCtx), gdb, visible
}

//
// Tests
//

func TestListQuotesPaginatesWithoutDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	page0, err := svc.ListQuotes(ctx, &pb.ListQuotesRequest{PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page0.Quotes, 10)
	assert.True(t, page0.HasMore)
	require.NotEmpty(t, page0.NextPageToken)

	page1, err := svc.ListQuotes(ctx, &pb.ListQuotesRequest{PageToken: page0.NextPageToken})
	require.NoError(t, err)
	require.Len(t, page1.Quotes, 2)
	assert.False(t, page1.HasMore)
	assert.Empty(t, page1.NextPageToken)

	seen := map[string]bool{}
	for _, q := range append(page0.Quotes, page1.Quotes...) {
		assert.False(t, seen[q.Id], "quote %s returned on two pages", q.Id)
		seen[q.Id] = true
	}

	// newest first within each page
	for i := 1; i < len(page0.Quotes); i++ {
		assert.GreaterOrEqual(t, page0.Quotes[i-1].CreatedAt, page0.Quotes[i].CreatedAt)
	}
}

func TestListQuotesAdPositions(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.ListQuotes(ctx, &pb.ListQuotesRequest{PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 5, 8}, resp.AdPositions)
}

func TestListQuotesSearchMatchesContentAndAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	// content match, case-insensitive
	resp, err := svc.ListQuotes(ctx, &pb.ListQuotesRequest{SearchTerm: "LIBERDADE", PageSize: 10})
	require.NoError(t, err)
	require.Len(t, resp.Quotes, 1)
	assert.Contains(t, resp.Quotes[0].Content, "liberdade")

	// author-name match returns only that author's quotes, no duplicates
	resp, err = svc.ListQuotes(ctx, &pb.ListQuotesRequest{SearchTerm: "clarice", PageSize: 10})
	require.NoError(t, err)
	require.Len(t, resp.Quotes, 6)
	seen := map[string]bool{}
	for _, q := range resp.Quotes {
		require.NotNil(t, q.Author)
		assert.Equal(t, "Clarice Lispector", q.Author.Name)
		assert.False(t, seen[q.Id])
		seen[q.Id] = true
	}
}

func TestListQuotesRejectsTokenFromAnotherSearch(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	page0, err := svc.ListQuotes(ctx, &pb.ListQuotesRequest{PageSize: 10})
	require.NoError(t, err)
	require.NotEmpty(t, page0.NextPageToken)

	_, err = svc.ListQuotes(ctx, &pb.ListQuotesRequest{SearchTerm: "clarice", PageToken: page0.NextPageToken})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetQuoteByCode(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)
	target := visible[4]

	resp, err := svc.GetQuoteByCode(ctx, &pb.GetQuoteByCodeRequest{PublicCode: shortcode.Encode(target.ID)})
	require.NoError(t, err)
	assert.Equal(t, target.ID, resp.Quote.Id)
	assert.Equal(t, shortcode.Encode(target.ID), resp.Quote.PublicCode)

	_, err = svc.GetQuoteByCode(ctx, &pb.GetQuoteByCodeRequest{PublicCode: "not-5"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetQuoteByCodeMissIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, gdb, visible := setupService(t)

	code := shortcode.Encode(visible[0].ID)
	// soft-delete the target: the permalink now resolves to nothing
	require.NoError(t, gdb.Exec("UPDATE quotes SET is_active = 0 WHERE id = ?", visible[0].ID).Error)

	_, err := svc.GetQuoteByCode(ctx, &pb.GetQuoteByCodeRequest{PublicCode: code})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestPublishQuoteStartsPending(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.PublishQuote(ctx, &pb.PublishQuoteRequest{
		AccountId: "account-machado",
		Content:   "  uma frase nova  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "uma frase nova", resp.Quote.Content)
	require.NotNil(t, resp.Quote.Author)
	assert.Equal(t, "Machado de Assis", resp.Quote.Author.Name)

	// pending quotes never surface in the feed
	list, err := svc.ListQuotes(ctx, &pb.ListQuotesRequest{SearchTerm: "uma frase nova", PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, list.Quotes)
}

func TestPublishQuoteWithoutProfileFails(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.PublishQuote(ctx, &pb.PublishQuoteRequest{
		AccountId: "account-sem-perfil",
		Content:   "frase",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestToggleLikeAuthenticatedRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)
	quote := visible[0]
	viewer := &pb.Viewer{Identity: &pb.Viewer_AccountId{AccountId: "account-clarice"}}

	resp, err := svc.ToggleLike(ctx, &pb.ToggleLikeRequest{QuoteId: quote.ID, Viewer: viewer})
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(1), resp.LikesCount)

	has, err := svc.HasReacted(ctx, &pb.HasReactedRequest{QuoteId: quote.ID, Viewer: viewer})
	require.NoError(t, err)
	assert.True(t, has.Reacted)

	resp, err = svc.ToggleLike(ctx, &pb.ToggleLikeRequest{QuoteId: quote.ID, Viewer: viewer})
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, int64(0), resp.LikesCount)
}

func TestToggleLikeAnonymousDevice(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)
	quote := visible[1]
	device := &pb.Viewer{Identity: &pb.Viewer_DeviceId{DeviceId: "device-abc"}}

	resp, err := svc.ToggleLike(ctx, &pb.ToggleLikeRequest{QuoteId: quote.ID, Viewer: device})
	require.NoError(t, err)
	assert.True(t, resp.Liked)

	// another device has its own like state
	other := &pb.Viewer{Identity: &pb.Viewer_DeviceId{DeviceId: "device-other"}}
	has, err := svc.HasReacted(ctx, &pb.HasReactedRequest{QuoteId: quote.ID, Viewer: other})
	require.NoError(t, err)
	assert.False(t, has.Reacted)
}

func TestToggleLikeWithoutProfileIsFailedPrecondition(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)

	viewer := &pb.Viewer{Identity: &pb.Viewer_AccountId{AccountId: "account-sem-perfil"}}
	_, err := svc.ToggleLike(ctx, &pb.ToggleLikeRequest{QuoteId: visible[0].ID, Viewer: viewer})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestHasReactedWithoutViewerReadsNotLiked(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)

	has, err := svc.HasReacted(ctx, &pb.HasReactedRequest{QuoteId: visible[0].ID})
	require.NoError(t, err)
	assert.False(t, has.Reacted)
}

func TestRegisterViewIncrementsPerCall(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)
	quote := visible[2]

	var last int64
	for i := 1; i <= 3; i++ {
		resp, err := svc.RegisterView(ctx, &pb.RegisterViewRequest{QuoteId: quote.ID})
		require.NoError(t, err)
		last = resp.ViewsCount
	}
	assert.Equal(t, int64(3), last)
}

func TestTrackViewRegistersAfterDwellDelay(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)

	resp, err := svc.TrackView(ctx, &pb.TrackViewRequest{QuoteId: visible[5].ID})
	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Equal(t, int64(1), resp.ViewsCount)
}

func TestTrackViewCancelledBeforeDelayRegistersNothing(t *testing.T) {
	svc, _, visible := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(2 * time.Millisecond)
		cancel()
	}()

	resp, err := svc.TrackView(ctx, &pb.TrackViewRequest{QuoteId: visible[5].ID})
	require.NoError(t, err)
	assert.False(t, resp.Registered)

	// the quote never got the view
	check, err := svc.RegisterView(context.Background(), &pb.RegisterViewRequest{QuoteId: visible[5].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), check.ViewsCount)
}

func TestRegisterShare(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)

	resp, err := svc.RegisterShare(ctx, &pb.RegisterShareRequest{QuoteId: visible[0].ID, Platform: "whatsapp"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.SharesCount)

	_, err = svc.RegisterShare(ctx, &pb.RegisterShareRequest{QuoteId: visible[0].ID, Platform: "  "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCountLikes(t *testing.T) {
	ctx := context.Background()
	svc, _, visible := setupService(t)
	quote := visible[0]

	viewer := &pb.Viewer{Identity: &pb.Viewer_AccountId{AccountId: "account-clarice"}}
	_, err := svc.ToggleLike(ctx, &pb.ToggleLikeRequest{QuoteId: quote.ID, Viewer: viewer})
	require.NoError(t, err)

	resp, err := svc.CountLikes(ctx, &pb.CountLikesRequest{QuoteId: quote.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)
}

func TestUnknownQuoteIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	device := &pb.Viewer{Identity: &pb.Viewer_DeviceId{DeviceId: "device-abc"}}
	_, err := svc.ToggleLike(ctx, &pb.ToggleLikeRequest{QuoteId: "missing", Viewer: device})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
