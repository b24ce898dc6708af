package editor

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	ErrSubmitInProgress = stdErrors.New("banner update already in progress")
	ErrNotLoaded        = stdErrors.New("no banner loaded")
	ErrLoading          = stdErrors.New("banner is still loading")
	ErrUpdateFailed     = stdErrors.New("banner update failed")
)

// Form is the state of one banner edit form. It is safe for concurrent use.
//
// Every Load takes a new generation. A response that arrives after a newer
// Load started is dropped, so a slow fetch for a previous identifier never
// overwrites the current form.
type Form struct {
	api       BannerAPI
	notifier  Notifier
	navigator Navigator

	mu           sync.Mutex
	id           string
	generation   uint64
	values       Input
	currentImage string
	loading      bool
	loadFailed   bool
	submitting   bool
}

func NewForm(api BannerAPI, notifier Notifier, navigator Navigator) *Form {
	return &Form{
		api:       api,
		notifier:  notifier,
		navigator: navigator,
		loading:   true,
	}
}

// Load fetches the banner and resets the form from it. Failures are logged
// and leave the form empty with LoadFailed set; they are not returned.
func (f *Form) Load(ctx context.Context, id string) {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.id = id
	f.values = Input{}
	f.currentImage = ""
	f.loading = true
	f.loadFailed = false
	f.mu.Unlock()

	if id == "" {
		f.finishLoad(gen, nil)
		return
	}

	res, err := f.api.FetchBannerByID(ctx, id)
	switch {
	case err != nil:
		slog.Error("error loading banner", "banner_id", id, "error", err)
		f.finishLoad(gen, nil)
	case !res.Success || res.Data == nil:
		slog.Error("error loading banner", "banner_id", id, "error", res.Error)
		f.finishLoad(gen, nil)
	default:
		f.finishLoad(gen, res.Data)
	}
}

func (f *Form) finishLoad(gen uint64, record *Record) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		slog.Debug("dropping stale banner load", "generation", gen, "current", f.generation)
		return
	}

	f.loading = false
	if f.id == "" {
		return
	}
	if record == nil {
		f.loadFailed = true
		return
	}

	f.currentImage = record.Image
	f.values = InputFromRecord(*record)
}

// Submit validates in and sends the update. image is the newly selected file
// or nil.
//
// A schema violation returns ValidationErrors without calling the backend.
// While a submission is pending further calls return ErrSubmitInProgress.
// Submitting while a load is in flight returns ErrLoading, after a failed load
// ErrNotLoaded.
// Backend failures are reported through the Notifier and returned wrapped in
// ErrUpdateFailed; success notifies and navigates to the listing.
func (f *Form) Submit(ctx context.Context, in Input, image *File) error {
	f.mu.Lock()
	f.values = in
	f.mu.Unlock()

	values, err := Validate(in)
	if err != nil {
		return err
	}

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if f.id == "" || f.loadFailed {
		f.mu.Unlock()
		return ErrNotLoaded
	}
	if f.loading {
		f.mu.Unlock()
		return ErrLoading
	}
	f.submitting = true
	id, currentImage := f.id, f.currentImage
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	res, err := f.api.UpdateBanner(ctx, id, BuildPayload(values, image, currentImage))
	if err != nil {
		slog.Error("error updating banner", "banner_id", id, "error", err)
		f.notifier.Failure(UpdateFailedMessage, GenericFailureDescription)
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	if !res.Success {
		description := res.Error
		if description == "" {
			description = GenericFailureDescription
		}
		f.notifier.Failure(UpdateFailedMessage, description)
		return fmt.Errorf("%w: %s", ErrUpdateFailed, description)
	}

	f.notifier.Success(UpdatedMessage, "")
	f.navigator.Navigate(ListingRoute)

	return nil
}

// ClearCurrentImage drops the retained image; the next submit without a new
// file clears the banner's image.
func (f *Form) ClearCurrentImage() {
	f.mu.Lock()
	f.currentImage = ""
	f.mu.Unlock()
}

func (f *Form) ID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

// Values returns the loaded defaults, or the last submitted input.
func (f *Form) Values() Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) CurrentImage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentImage
}

func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// LoadFailed reports whether the last load for a non-empty identifier failed.
func (f *Form) LoadFailed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadFailed
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}
