// Package feed assembles the paginated, searchable quote feed for one
// viewing session.
//
// The Assembler accumulates pages for the active search term,
// deduplicating across pages: the two-source search union can re-surface
// an id already shown earlier when result-set boundaries shift under
// concurrent writes. Changing the term starts a new generation; a fetch
// that completes for a superseded generation is dropped on arrival and
// never overwrites the current result set.
package feed

import (
	"context"
	"sync"

	"github.com/frasehub/frasehub/internal/db"
)

// Source is the paginated query surface the assembler consumes,
// satisfied by repository.QuoteRepository.
type Source interface {
	FetchPage(ctx context.Context, term string, page, pageSize int) ([]db.Quote, bool, error)
}

// Assembler loads consecutive feed pages for a session.
type Assembler struct {
	source   Source
	pageSize int

	mu         sync.Mutex
	term       string
	generation uint64
	nextPage   int
	hasMore    bool
	seen       map[string]struct{}
	items      []db.Quote
}

// NewAssembler creates an assembler for the empty search term.
func NewAssembler(source Source, pageSize int) *Assembler {
	return &Assembler{
		source:   source,
		pageSize: pageSize,
		hasMore:  true,
		seen:     make(map[string]struct{}),
	}
}

// SetTerm switches the active search term. A changed term resets the
// accumulated items and supersedes every in-flight fetch.
func (a *Assembler) SetTerm(term string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if term == a.term {
		return
	}
	a.term = term
	a.generation++
	a.nextPage = 0
	a.hasMore = true
	a.seen = make(map[string]struct{})
	a.items = nil
}

// LoadMore fetches the next page for the active term and appends the
// quotes not already shown this session. It returns only the newly
// appended quotes; Items has the full accumulated feed.
//
// A response arriving after SetTerm superseded its fetch is discarded:
// no items, no error, no state change.
func (a *Assembler) LoadMore(ctx context.Context) ([]db.Quote, error) {
	a.mu.Lock()
	if !a.hasMore {
		a.mu.Unlock()
		return nil, nil
	}
	term := a.term
	page := a.nextPage
	generation := a.generation
	a.mu.Unlock()

	quotes, hasMore, err := a.source.FetchPage(ctx, term, page, a.pageSize)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if generation != a.generation {
		// superseded by a newer term; drop silently
		return nil, nil
	}

	appended := make([]db.Quote, 0, len(quotes))
	for _, q := range quotes {
		if _, dup := a.seen[q.ID]; dup {
			continue
		}
		a.seen[q.ID] = struct{}{}
		appended = append(appended, q)
	}
	a.items = append(a.items, appended...)
	a.nextPage = page + 1
	a.hasMore = hasMore
	return appended, nil
}

// Items returns a copy of the accumulated feed for the active term.
func (a *Assembler) Items() []db.Quote {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]db.Quote, len(a.items))
	copy(out, a.items)
	return out
}

// HasMore reports whether another LoadMore may yield items.
func (a *Assembler) HasMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasMore
}

// Term returns the active search term.
func (a *Assembler) Term() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.term
}
