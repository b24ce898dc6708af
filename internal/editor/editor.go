// Package editor holds the banner edit form: it loads a banner through the
// REST API, keeps the form state, validates input against the banner schema
// and submits the update as a multipart payload.
//
// The package has no UI of its own. Whatever renders the form provides a
// Notifier for user-facing messages and a Navigator for leaving the page.
package editor

import (
	"context"
	"strings"
)

const (
	ListingRoute = "/admin/banners"

	UpdatedMessage            = "Banner updated successfully"
	UpdateFailedMessage       = "Failed to update banner"
	GenericFailureDescription = "An unexpected error occurred"
)

// Record is a banner as the backend returns it. Dates are kept as the raw
// strings from the wire.
type Record struct {
	ID        string
	Title     string
	Subtitle  string
	Image     string
	CTA       string
	CTALink   string
	BgColor   string
	Order     int
	IsActive  bool
	StartDate string
	EndDate   string
}

type FetchResult struct {
	Success bool
	Data    *Record
	Error   string
}

type UpdateResult struct {
	Success bool
	Error   string
}

// BannerAPI is the backend the form talks to. A returned error means the
// request did not complete; business failures come back in the result.
type BannerAPI interface {
	FetchBannerByID(ctx context.Context, id string) (FetchResult, error)
	UpdateBanner(ctx context.Context, id string, payload *Payload) (UpdateResult, error)
}

type Notifier interface {
	Success(message, description string)
	Failure(message, description string)
}

type Navigator interface {
	Navigate(route string)
}

// PreviewURL prefixes a stored image reference with the uploads base path.
func PreviewURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
}
