package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/frasehub/frasehub/internal/db"
	"github.com/frasehub/frasehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	require.NoError(t, err)
	// single connection: in-memory sqlite locks the whole DB per writer
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(&db.Author{}, &db.Quote{}, &db.Reaction{}, &db.QuoteView{}, &db.QuoteShare{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func seedAuthor(t *testing.T, gdb *gorm.DB, name string) db.Author {
	t.Helper()
	author := db.Author{AccountID: "account-" + name, Name: name}
	require.NoError(t, gdb.Create(&author).Error)
	return author
}

func seedQuote(t *testing.T, gdb *gorm.DB, author db.Author, content string, age time.Duration) db.Quote {
	t.Helper()
	quote := db.Quote{
		AuthorID:   author.ID,
		Content:    content,
		IsApproved: true,
		IsActive:   true,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond).Add(-age),
	}
	require.NoError(t, gdb.Create(&quote).Error)
	return quote
}

func TestFetchPageEmptyTermOrdersAndPaginates(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuoteRepository(gdb)
	author := seedAuthor(t, gdb, "Clarice")

	for i := 0; i < 25; i++ {
		seedQuote(t, gdb, author, fmt.Sprintf("frase %02d", i), time.Duration(i)*time.Minute)
	}

	page0, hasMore, err := repo.FetchPage(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, page0, 10)
	assert.True(t, hasMore)

	page1, hasMore, err := repo.FetchPage(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	assert.True(t, hasMore)

	page2, hasMore, err := repo.FetchPage(ctx, "", 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 5)
	assert.False(t, hasMore)

	// no id may repeat across pages without concurrent writes
	seen := map[string]bool{}
	for _, page := range [][]db.Quote{page0, page1, page2} {
		for _, q := range page {
			assert.False(t, seen[q.ID], "quote %s returned twice", q.ID)
			seen[q.ID] = true
		}
		// non-increasing created_at within the page
		for i := 1; i < len(page); i++ {
			assert.False(t, page[i].CreatedAt.After(page[i-1].CreatedAt))
		}
	}
}

func TestFetchPageSearchMatchesContentOrAuthor(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuoteRepository(gdb)

	machado := seedAuthor(t, gdb, "Machado de Assis")
	clarice := seedAuthor(t, gdb, "Clarice Lispector")

	seedQuote(t, gdb, machado, "A vida é combate", time.Minute)
	seedQuote(t, gdb, clarice, "Liberdade é pouco", 2*time.Minute)
	seedQuote(t, gdb, clarice, "O tempo não para de machucar", 3*time.Minute)
	seedQuote(t, gdb, machado, "Sem relação com o termo", 4*time.Minute)

	// "machado" hits the author name and, case-insensitively, content
	quotes, _, err := repo.FetchPage(ctx, "MACHAD", 0, 10)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	seen := map[string]bool{}
	for _, q := range quotes {
		assert.False(t, seen[q.ID], "duplicate id in search page")
		seen[q.ID] = true
		require.NotEmpty(t, q.Author.Name, "author must be loaded")
	}
	// ordering invariant holds on the merged set too
	for i := 1; i < len(quotes); i++ {
		assert.False(t, quotes[i].CreatedAt.After(quotes[i-1].CreatedAt))
	}
}

func TestFetchPageSearchDedupesDoubleMatches(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuoteRepository(gdb)

	// author name and content both contain the term → both queries match
	author := seedAuthor(t, gdb, "Vida Boa")
	quote := seedQuote(t, gdb, author, "a vida é boa", time.Minute)

	quotes, _, err := repo.FetchPage(ctx, "vida", 0, 10)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, quote.ID, quotes[0].ID)
}

func TestFetchPageFiltersInvisibleQuotes(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuoteRepository(gdb)
	author := seedAuthor(t, gdb, "Autor")

	visible := seedQuote(t, gdb, author, "aprovada e ativa", time.Minute)

	pending := db.Quote{AuthorID: author.ID, Content: "pendente", IsApproved: false, IsActive: true}
	require.NoError(t, gdb.Create(&pending).Error)
	rejected := db.Quote{AuthorID: author.ID, Content: "rejeitada", IsApproved: true, IsActive: false}
	require.NoError(t, gdb.Create(&rejected).Error)

	quotes, _, err := repo.FetchPage(ctx, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, visible.ID, quotes[0].ID)

	all, err := repo.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCounterIncrementsAreAtomic(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuoteRepository(gdb)
	author := seedAuthor(t, gdb, "Autor")
	quote := seedQuote(t, gdb, author, "frase concorrida", time.Minute)

	// concurrent viewers racing on the same counter must not lose updates
	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementViews(ctx, quote.ID))
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), got.ViewsCount)
}

func TestDecrementLikesFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuoteRepository(gdb)
	author := seedAuthor(t, gdb, "Autor")
	quote := seedQuote(t, gdb, author, "frase", time.Minute)

	require.NoError(t, repo.DecrementLikes(ctx, quote.ID))
	require.NoError(t, repo.DecrementLikes(ctx, quote.ID))

	count, err := repo.LikesCount(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.IncrementLikes(ctx, quote.ID))
	count, err = repo.LikesCount(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
