package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frasehub/frasehub/internal/db"
	"github.com/frasehub/frasehub/internal/feed"
)

// fakeSource serves scripted pages keyed by term and page index and can
// block a fetch until released, to simulate slow in-flight requests.
type fakeSource struct {
	pages   map[string][][]db.Quote
	blockOn chan struct{} // when set, FetchPage waits for a receive
}

func (f *fakeSource) FetchPage(ctx context.Context, term string, page, pageSize int) ([]db.Quote, bool, error) {
	if f.blockOn != nil {
		select {
		case <-f.blockOn:
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}
	script := f.pages[term]
	if page >= len(script) {
		return nil, false, nil
	}
	items := script[page]
	return items, len(items) == pageSize, nil
}

func quotes(ids ...string) []db.Quote {
	out := make([]db.Quote, 0, len(ids))
	base := time.Now().UTC()
	for i, id := range ids {
		out = append(out, db.Quote{ID: id, Content: "frase " + id, CreatedAt: base.Add(-time.Duration(i) * time.Minute)})
	}
	return out
}

func TestLoadMoreAccumulatesPages(t *testing.T) {
	src := &fakeSource{pages: map[string][][]db.Quote{
		"": {quotes("a", "b"), quotes("c", "d"), quotes("e")},
	}}
	asm := feed.NewAssembler(src, 2)

	appended, err := asm.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, appended, 2)
	assert.True(t, asm.HasMore())

	appended, err = asm.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, appended, 2)

	appended, err = asm.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, appended, 1)
	assert.False(t, asm.HasMore())

	assert.Len(t, asm.Items(), 5)

	// exhausted: further loads are no-ops
	appended, err = asm.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, appended)
}

func TestLoadMoreDropsCrossPageDuplicates(t *testing.T) {
	// shifting result-set boundaries re-surface "b" on the second page
	src := &fakeSource{pages: map[string][][]db.Quote{
		"": {quotes("a", "b"), quotes("b", "c")},
	}}
	asm := feed.NewAssembler(src, 2)

	_, err := asm.LoadMore(context.Background())
	require.NoError(t, err)
	appended, err := asm.LoadMore(context.Background())
	require.NoError(t, err)

	require.Len(t, appended, 1)
	assert.Equal(t, "c", appended[0].ID)

	ids := map[string]bool{}
	for _, q := range asm.Items() {
		assert.False(t, ids[q.ID], "id %s appears twice in the session feed", q.ID)
		ids[q.ID] = true
	}
}

func TestSetTermResetsSession(t *testing.T) {
	src := &fakeSource{pages: map[string][][]db.Quote{
		"":     {quotes("a", "b")},
		"vida": {quotes("v1")},
	}}
	asm := feed.NewAssembler(src, 2)

	_, err := asm.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, asm.Items(), 2)

	asm.SetTerm("vida")
	assert.Empty(t, asm.Items())
	assert.True(t, asm.HasMore())

	appended, err := asm.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, appended, 1)
	assert.Equal(t, "v1", appended[0].ID)
}

func TestStaleResponseIsDroppedNotApplied(t *testing.T) {
	release := make(chan struct{})
	src := &fakeSource{
		pages: map[string][][]db.Quote{
			"velho": {quotes("stale1", "stale2")},
			"novo":  {quotes("fresh1")},
		},
		blockOn: release,
	}
	asm := feed.NewAssembler(src, 2)
	asm.SetTerm("velho")

	type result struct {
		appended []db.Quote
		err      error
	}
	done := make(chan result, 1)
	go func() {
		appended, err := asm.LoadMore(context.Background())
		done <- result{appended, err}
	}()

	// a newer search supersedes the in-flight fetch
	asm.SetTerm("novo")
	release <- struct{}{}

	res := <-done
	require.NoError(t, res.err)
	assert.Empty(t, res.appended, "stale response must be dropped, not surfaced")
	assert.Empty(t, asm.Items(), "stale response must not clobber the session")

	// the fresh term still loads normally
	go func() { release <- struct{}{} }()
	appended, err := asm.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, appended, 1)
	assert.Equal(t, "fresh1", appended[0].ID)
}
