package view

import (
	"context"
	"errors"
	"sync"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchPost(p models.Post, q string) bool { return p.MatchesQuery(q) }

func fixedFetch(posts []models.Post) Fetch[models.Post] {
	return func(_ context.Context) ([]models.Post, error) { return posts, nil }
}

func TestListController_LoadReady(t *testing.T) {
	t.Parallel()
	posts := []models.Post{
		{ID: 1, Title: "A", Description: "d", ImageURL: "u"},
		{ID: 2, Title: "B", Description: "e", ImageURL: "v"},
	}
	lc := NewListController(fixedFetch(posts), matchPost)
	assert.Equal(t, StateLoading, lc.State())

	lc.Load(context.Background())
	assert.Equal(t, StateReady, lc.State())
	assert.Equal(t, posts, lc.Items())
	assert.NoError(t, lc.Err())
}

func TestListController_LoadErroredThenRetry(t *testing.T) {
	t.Parallel()
	calls := 0
	fetchErr := errors.New("Failed to fetch posts: 500")
	fetch := func(_ context.Context) ([]models.Post, error) {
		calls++
		if calls == 1 {
			return nil, fetchErr
		}
		return []models.Post{{ID: 1, Title: "A"}}, nil
	}
	lc := NewListController(fetch, matchPost)

	lc.Load(context.Background())
	assert.Equal(t, StateErrored, lc.State())
	assert.Equal(t, fetchErr, lc.Err())
	assert.Equal(t, 1, calls, "no auto-retry")

	lc.Retry(context.Background())
	assert.Equal(t, StateReady, lc.State())
	assert.NoError(t, lc.Err())
	assert.Equal(t, 2, calls)
}

func TestListController_FilterCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	lc := NewListController(fixedFetch([]models.Post{
		{ID: 1, Title: "A", Description: "d", ImageURL: "u"},
	}), matchPost)
	lc.Load(context.Background())

	lc.SetQuery("a")
	require.Len(t, lc.Visible(), 1, "query matches title case-insensitively")

	lc.SetQuery("z")
	assert.Empty(t, lc.Visible())

	lc.SetQuery("")
	assert.Len(t, lc.Visible(), 1, "empty query yields the full collection")
}

func TestListController_FilterMatchesDescriptionAndPreservesOrder(t *testing.T) {
	t.Parallel()
	posts := []models.Post{
		{ID: 3, Title: "Watercolor", Description: "Brush control"},
		{ID: 1, Title: "Guitar", Description: "chord BRUSHing drills"},
		{ID: 2, Title: "Chess", Description: "openings"},
	}
	lc := NewListController(fixedFetch(posts), matchPost)
	lc.Load(context.Background())
	lc.SetQuery("brush")

	visible := lc.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, 3, visible[0].ID, "server order preserved")
	assert.Equal(t, 1, visible[1].ID)
}

func TestListController_FilterIdempotent(t *testing.T) {
	t.Parallel()
	lc := NewListController(fixedFetch([]models.Post{
		{ID: 1, Title: "Alpha"}, {ID: 2, Title: "Beta"},
	}), matchPost)
	lc.Load(context.Background())
	lc.SetQuery("alp")

	first := lc.Visible()
	lc.SetQuery("alp")
	assert.Equal(t, first, lc.Visible(), "re-applying an equal query yields the same subset")
}

func TestListController_MutationTriggersFullRefetch(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	serverPosts := []models.Post{{ID: 1, Title: "A"}}
	fetchCalls := 0
	fetch := func(_ context.Context) ([]models.Post, error) {
		mu.Lock()
		defer mu.Unlock()
		fetchCalls++
		out := make([]models.Post, len(serverPosts))
		copy(out, serverPosts)
		return out, nil
	}
	lc := NewListController(fetch, matchPost)
	lc.Load(context.Background())

	// A mutation succeeded elsewhere; the controller re-asks for the
	// authoritative list instead of patching its own slice.
	mu.Lock()
	serverPosts = append(serverPosts, models.Post{ID: 2, Title: "B"})
	mu.Unlock()
	lc.Load(context.Background())

	assert.Equal(t, 2, fetchCalls)
	assert.Len(t, lc.Items(), 2)
}

func TestListController_ClosedDiscardsLateResult(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	fetch := func(_ context.Context) ([]models.Post, error) {
		<-release
		return []models.Post{{ID: 9, Title: "late"}}, nil
	}
	lc := NewListController(fetch, matchPost)

	done := make(chan struct{})
	go func() {
		lc.Load(context.Background())
		close(done)
	}()

	lc.Close()
	close(release)
	<-done

	assert.Empty(t, lc.Items(), "a result arriving after unmount must be discarded")
	assert.Equal(t, StateLoading, lc.State())
}

func TestListController_LastResponseWins(t *testing.T) {
	t.Parallel()
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	call := 0
	var mu sync.Mutex
	fetch := func(_ context.Context) ([]models.Post, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-releaseFirst
			return []models.Post{{ID: 1, Title: "stale"}}, nil
		}
		return []models.Post{{ID: 2, Title: "fresh"}}, nil
	}
	lc := NewListController(fetch, matchPost)

	done := make(chan struct{})
	go func() {
		lc.Load(context.Background())
		close(done)
	}()
	<-firstStarted

	// A retry fired while the first fetch was still pending.
	lc.Load(context.Background())
	close(releaseFirst)
	<-done

	require.Equal(t, StateReady, lc.State())
	items := lc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Title, "the superseded response must not overwrite the newer one")
}
