package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"skillswap/internal/client"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_BuildPost(t *testing.T) {
	t.Parallel()
	f := NewFactory(1)

	post := f.BuildPost()
	assert.NoError(t, post.Validate(), "generated posts pass required-field validation")
	assert.Zero(t, post.ID, "identity is assigned upstream")

	withTitle := f.BuildPost(func(p *models.Post) { p.Title = "Custom" })
	assert.Equal(t, "Custom", withTitle.Title)
}

func TestFactory_BuildRatingWithinRange(t *testing.T) {
	t.Parallel()
	f := NewFactory(2)
	for i := 0; i < 50; i++ {
		r := f.BuildRating(7)
		require.NoError(t, r.Validate())
		assert.Equal(t, 7, r.PostID)
		assert.Zero(t, r.ID)
	}
}

func TestFactory_BuildLearningPlan(t *testing.T) {
	t.Parallel()
	f := NewFactory(3)
	plan := f.BuildLearningPlan()
	assert.NoError(t, plan.Validate())
}

func TestSeeder_SeedPosts(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	nextID := 1
	var posts, comments, ratings int

	mux := http.NewServeMux()
	create := func(counter *int, decode func(*http.Request) any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			*counter++
			id := nextID
			nextID++
			mu.Unlock()
			v := decode(r)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			switch rec := v.(type) {
			case *models.Post:
				rec.ID = id
				_ = json.NewEncoder(w).Encode(rec)
			case *models.Comment:
				rec.ID = id
				_ = json.NewEncoder(w).Encode(rec)
			case *models.Rating:
				rec.ID = id
				_ = json.NewEncoder(w).Encode(rec)
			}
		}
	}
	mux.HandleFunc("POST /post", create(&posts, func(r *http.Request) any {
		var p models.Post
		_ = json.NewDecoder(r.Body).Decode(&p)
		return &p
	}))
	mux.HandleFunc("POST /comment", create(&comments, func(r *http.Request) any {
		var c models.Comment
		_ = json.NewDecoder(r.Body).Decode(&c)
		return &c
	}))
	mux.HandleFunc("POST /rating", create(&ratings, func(r *http.Request) any {
		var rt models.Rating
		_ = json.NewDecoder(r.Body).Decode(&rt)
		return &rt
	}))

	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewSeeder(client.New(client.Options{BaseURL: srv.URL}), 42)
	created, err := s.SeedPosts(context.Background(), 3, 2, 4)
	require.NoError(t, err)

	assert.Len(t, created, 3)
	assert.Equal(t, 3, posts)
	assert.Equal(t, 6, comments)
	assert.Equal(t, 12, ratings)
	for _, p := range created {
		assert.Positive(t, p.ID)
	}
}

func TestSeeder_ClearAll(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	deleted := map[string][]int{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Post{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}})
	})
	mux.HandleFunc("GET /learning-plans", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.LearningPlan{{ID: 9, Title: "P"}})
	})
	record := func(kind string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id, _ := strconv.Atoi(r.PathValue("id"))
			mu.Lock()
			deleted[kind] = append(deleted[kind], id)
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}
	}
	mux.HandleFunc("DELETE /post/{id}", record("post"))
	mux.HandleFunc("DELETE /learning-plan/{id}", record("plan"))

	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewSeeder(client.New(client.Options{BaseURL: srv.URL}), 42)
	require.NoError(t, s.ClearAll(context.Background()))

	assert.ElementsMatch(t, []int{1, 2}, deleted["post"])
	assert.Equal(t, []int{9}, deleted["plan"])
}
