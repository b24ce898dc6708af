package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/The-Gleb/banner_admin/internal/domain/usecase"
)

var _ usecase.BannerService = new(bannerService)

var (
	ErrCacheMiss  = stdErrors.New("banner is not cached")
	ErrCacheStale = stdErrors.New("banner was invalidated while it was read")
)

type BannerStorage interface {
	CreateBanner(ctx context.Context, dto entity.StoreBannerDTO) (int64, error)
	GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error)
	GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error)
	UpdateBanner(ctx context.Context, dto entity.StoreBannerDTO) (string, error)
	DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) (string, error)
}

// BannerCache keeps an invalidation version per banner. Delete bumps it and
// Set only stores the banner when the version is still the one passed in,
// returning ErrCacheStale otherwise.
type BannerCache interface {
	Version(ctx context.Context, id int64) (int64, error)
	Set(ctx context.Context, banner entity.Banner, version int64) error
	Get(ctx context.Context, id int64) (entity.Banner, error)
	Delete(ctx context.Context, id int64) error
}

type ImageStore interface {
	Save(ctx context.Context, upload entity.ImageUpload) (string, error)
	Remove(ctx context.Context, ref string) error
}

type bannerService struct {
	storage BannerStorage
	cache   BannerCache
	images  ImageStore
}

func NewBannerService(storage BannerStorage, cache BannerCache, images ImageStore) *bannerService {
	return &bannerService{
		storage: storage,
		cache:   cache,
		images:  images,
	}
}

func (service *bannerService) CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error) {
	var image string
	if dto.Image != nil {
		ref, err := service.images.Save(ctx, *dto.Image)
		if err != nil {
			return 0, err
		}
		image = ref
	}

	id, err := service.storage.CreateBanner(ctx, entity.StoreBannerDTO{
		Content:   entity.WithDefaults(dto.Content),
		Image:     image,
		Order:     dto.Order,
		IsActive:  dto.IsActive,
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
	})
	if err != nil {
		service.removeImage(ctx, image)
		return 0, err
	}

	return id, nil
}

func (service *bannerService) GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {
	banner, err := service.cache.Get(ctx, dto.BannerID)
	if err == nil {
		slog.Debug("banner found in cache", "banner_id", dto.BannerID)
		return banner, nil
	}
	if !stdErrors.Is(err, ErrCacheMiss) {
		slog.Warn("cache lookup failed, falling back to storage", "error", err)
	}

	version, verr := service.cache.Version(ctx, dto.BannerID)
	if verr != nil {
		slog.Warn("failed to read cache version", "banner_id", dto.BannerID, "error", verr)
	}

	banner, err = service.storage.GetBanner(ctx, dto)
	if err != nil {
		return entity.Banner{}, err
	}
	if verr != nil {
		return banner, nil
	}

	err = service.cache.Set(ctx, banner, version)
	switch {
	case stdErrors.Is(err, ErrCacheStale):
		slog.Debug("banner changed while reading, not caching", "banner_id", banner.ID)
	case err != nil:
		slog.Warn("failed to cache banner", "banner_id", banner.ID, "error", err)
	}

	return banner, nil
}

func (service *bannerService) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error) {
	return service.storage.GetBanners(ctx, dto)
}

// UpdateBanner replaces the stored image when a new one is uploaded, keeps it
// when the retention marker is set, and clears it otherwise.
func (service *bannerService) UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error {
	store := entity.StoreBannerDTO{
		BannerID:  dto.BannerID,
		Content:   entity.WithDefaults(dto.Content),
		Order:     dto.Order,
		IsActive:  dto.IsActive,
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
	}

	switch {
	case dto.Image != nil:
		ref, err := service.images.Save(ctx, *dto.Image)
		if err != nil {
			return err
		}
		store.Image = ref
	case dto.CurrentImage != "":
		store.KeepImage = true
	}

	previous, err := service.storage.UpdateBanner(ctx, store)
	if err != nil {
		service.removeImage(ctx, store.Image)
		return err
	}

	if !store.KeepImage && previous != store.Image {
		service.removeImage(ctx, previous)
	}

	service.invalidate(ctx, dto.BannerID)

	return nil
}

func (service *bannerService) DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error {
	image, err := service.storage.DeleteBanner(ctx, dto)
	if err != nil {
		return err
	}

	service.removeImage(ctx, image)
	service.invalidate(ctx, dto.BannerID)

	return nil
}

func (service *bannerService) removeImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := service.images.Remove(ctx, ref); err != nil {
		slog.Warn("failed to remove image", "ref", ref, "error", err)
	}
}

func (service *bannerService) invalidate(ctx context.Context, id int64) {
	if err := service.cache.Delete(ctx, id); err != nil {
		slog.Warn("failed to invalidate cached banner", "banner_id", id, "error", err)
	}
}
