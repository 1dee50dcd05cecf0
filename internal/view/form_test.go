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

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errs      []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, msg)
}

func validatePost(p models.Post) error { return p.Validate() }

func echoSubmit(calls *int) Submit[models.Post] {
	return func(_ context.Context, p models.Post) (*models.Post, error) {
		if calls != nil {
			*calls++
		}
		return &p, nil
	}
}

func TestForm_CreateSuccessClosesAndClears(t *testing.T) {
	t.Parallel()
	submitCalls := 0
	refetched := 0
	notifier := &recordingNotifier{}
	f := NewForm(validatePost, echoSubmit(&submitCalls), notifier,
		func(_ context.Context) { refetched++ })

	f.Open(ModeCreate, models.Post{})
	created, err := f.Submit(context.Background(), models.Post{
		Title: "Guitar", Description: "chords", ImageURL: "u",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Guitar", created.Title)
	assert.Equal(t, 1, submitCalls)
	assert.False(t, f.IsOpen(), "a successful create closes the form")
	assert.Equal(t, models.Post{}, f.Record(), "create mode clears its fields on success")
	assert.Equal(t, 1, refetched, "success hands control back to the list for a full re-fetch")
	assert.Equal(t, []string{"Saved successfully"}, notifier.successes)
}

func TestForm_EditSuccessKeepsRecord(t *testing.T) {
	t.Parallel()
	f := NewForm(validatePost, echoSubmit(nil), NopNotifier{}, nil)
	edited := models.Post{ID: 4, Title: "Chess", Description: "openings", ImageURL: "u"}
	f.Open(ModeEdit, edited)
	_, err := f.Submit(context.Background(), edited)

	require.NoError(t, err)
	assert.False(t, f.IsOpen())
	assert.Equal(t, edited, f.Record(), "edit mode does not wipe the record")
}

func TestForm_ValidationFailureNeverReachesNetwork(t *testing.T) {
	t.Parallel()
	submitCalls := 0
	notifier := &recordingNotifier{}
	f := NewForm(validatePost, echoSubmit(&submitCalls), notifier, nil)
	f.Open(ModeCreate, models.Post{})
	_, err := f.Submit(context.Background(), models.Post{Title: "only a title"})

	require.Error(t, err)
	assert.Equal(t, 0, submitCalls, "invalid input must not produce a request")
	assert.True(t, f.IsOpen())
	assert.Equal(t, err, f.Err())
	require.Len(t, notifier.errs, 1)
}

func TestForm_SubmitFailureKeepsFormOpen(t *testing.T) {
	t.Parallel()
	submitErr := errors.New("Failed to create post: 500")
	refetched := 0
	f := NewForm(validatePost,
		func(_ context.Context, _ models.Post) (*models.Post, error) { return nil, submitErr },
		NopNotifier{},
		func(_ context.Context) { refetched++ })
	payload := models.Post{Title: "A", Description: "d", ImageURL: "u"}
	f.Open(ModeCreate, payload)
	_, err := f.Submit(context.Background(), payload)

	require.ErrorIs(t, err, submitErr)
	assert.True(t, f.IsOpen(), "failure keeps the user's input on screen")
	assert.Equal(t, payload, f.Record())
	assert.Equal(t, submitErr, f.Err())
	assert.Equal(t, 0, refetched)
	assert.False(t, f.IsSubmitting(), "the in-flight flag resets after a failure")
}

func TestForm_DoubleSubmitBlocked(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	release := make(chan struct{})
	submitCalls := 0
	var mu sync.Mutex
	f := NewForm(validatePost,
		func(_ context.Context, p models.Post) (*models.Post, error) {
			mu.Lock()
			submitCalls++
			mu.Unlock()
			close(started)
			<-release
			return &p, nil
		},
		NopNotifier{}, nil)
	payload := models.Post{Title: "A", Description: "d", ImageURL: "u"}
	f.Open(ModeCreate, payload)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), payload)
		done <- err
	}()
	<-started

	assert.True(t, f.IsSubmitting())
	_, err := f.Submit(context.Background(), payload)
	require.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, submitCalls, "the second click while pending must be a no-op")
}

func TestForm_ReopenAfterFailureClearsError(t *testing.T) {
	t.Parallel()
	f := NewForm(validatePost,
		func(_ context.Context, _ models.Post) (*models.Post, error) { return nil, errors.New("boom") },
		NopNotifier{}, nil)
	payload := models.Post{Title: "A", Description: "d", ImageURL: "u"}
	f.Open(ModeCreate, payload)
	_, err := f.Submit(context.Background(), payload)
	require.Error(t, err)
	require.Error(t, f.Err())

	f.Open(ModeEdit, models.Post{ID: 1, Title: "B", Description: "e", ImageURL: "v"})
	assert.NoError(t, f.Err(), "opening a fresh session starts clean")
}
