package entity

import (
	"io"
	"time"
)

type GetBannerDTO struct {
	BannerID int64
}

type GetBannersDTO struct {
	Limit  int
	Offset int
}

// ImageUpload is a new image file sent along with a create or update request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

type CreateBannerDTO struct {
	Content   Content
	Image     *ImageUpload
	Order     int
	IsActive  bool
	StartDate time.Time
	EndDate   *time.Time
}

type UpdateBannerDTO struct {
	BannerID int64
	Content  Content
	Image    *ImageUpload
	// CurrentImage is the retention marker: when no new image is sent and it is
	// non-empty the stored image is kept, otherwise the stored image is cleared.
	CurrentImage string
	Order        int
	IsActive     bool
	StartDate    time.Time
	EndDate      *time.Time
}

type DeleteBannerDTO struct {
	BannerID int64
}

// StoreBannerDTO is what the service hands to storage after resolving images.
type StoreBannerDTO struct {
	BannerID int64
	Content  Content
	Image    string
	// KeepImage leaves the stored image column untouched, Image is ignored.
	KeepImage bool
	Order     int
	IsActive  bool
	StartDate time.Time
	EndDate   *time.Time
}
