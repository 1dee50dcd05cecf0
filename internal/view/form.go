package view

import (
	"context"
	"sync"

	"skillswap/internal/models"
)

// Mode distinguishes create forms (fields start empty, cleared on success)
// from edit forms (fields pre-populated, left as-is on success).
type Mode int

const (
	// ModeCreate submits a new record without an id.
	ModeCreate Mode = iota
	// ModeEdit submits a full replacement of an existing record.
	ModeEdit
)

// Submit delegates the validated payload to the resource client.
type Submit[T any] func(ctx context.Context, payload T) (*T, error)

// Validate checks required-field presence before any network call.
type Validate[T any] func(payload T) error

// ErrSubmitInFlight is returned when a submission is attempted while a prior
// one has not finished; the form blocks concurrent double-submit.
var ErrSubmitInFlight = models.NewValidationError("A submission is already in progress")

// Form collects input for a create or update, validates it locally, and
// delegates to a resource client operation. On success the form closes and
// signals its owner to re-fetch; on failure it stays open with the error
// retained so the user can correct and resubmit.
type Form[T any] struct {
	mu         sync.Mutex
	mode       Mode
	open       bool
	submitting bool
	record     T
	lastErr    error
	validate   Validate[T]
	submit     Submit[T]
	onSuccess  func(ctx context.Context)
	notifier   Notifier
}

// NewForm creates a closed form. onSuccess may be nil; it typically points
// at the owning list controller's Load so every mutation triggers a full
// re-fetch.
func NewForm[T any](validate Validate[T], submit Submit[T], notifier Notifier, onSuccess func(ctx context.Context)) *Form[T] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Form[T]{validate: validate, submit: submit, notifier: notifier, onSuccess: onSuccess}
}

// Open shows the form. In edit mode record pre-populates the fields; in
// create mode it is the zero value.
func (f *Form[T]) Open(mode Mode, record T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = mode
	f.record = record
	f.open = true
	f.lastErr = nil
}

// Close hides the form without submitting.
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
}

// IsOpen reports whether the form is visible.
func (f *Form[T]) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// IsSubmitting reports whether a submission is in flight.
func (f *Form[T]) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Record returns the current field values.
func (f *Form[T]) Record() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

// Err returns the error from the last failed submission, if any.
func (f *Form[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submit validates and submits the payload. Validation failures never reach
// the network and surface through the notifier like any other error. On
// success the form closes, create-mode fields are cleared, and the owner is
// signalled to re-fetch. On failure the form stays open, the error is
// displayed, and the in-flight flag clears so the user can resubmit.
func (f *Form[T]) Submit(ctx context.Context, payload T) (*T, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if f.validate != nil {
		if err := f.validate(payload); err != nil {
			f.lastErr = err
			f.mu.Unlock()
			f.notifier.Error(err.Error())
			return nil, err
		}
	}
	f.submitting = true
	f.record = payload
	mode := f.mode
	submit := f.submit
	f.mu.Unlock()

	result, err := submit(ctx, payload)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.lastErr = err
		f.mu.Unlock()
		f.notifier.Error(err.Error())
		return nil, err
	}
	f.lastErr = nil
	f.open = false
	if mode == ModeCreate {
		var zero T
		f.record = zero
	}
	onSuccess := f.onSuccess
	f.mu.Unlock()

	f.notifier.Success("Saved successfully")
	if onSuccess != nil {
		onSuccess(ctx)
	}
	return result, nil
}
