package usecase

import (
	"context"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
)

type BannerService interface {
	CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error)
	DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error
	GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error)
	GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error)
	UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error
}

type createBannerUsecase struct {
	bannerService BannerService
}

func NewCreateBannerUsecase(bannerService BannerService) *createBannerUsecase {
	return &createBannerUsecase{bannerService}
}

func (u *createBannerUsecase) CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error) {
	dto.Content = normalizeContent(dto.Content)
	if err := checkBanner(dto.Content, dto.Order, dto.StartDate, dto.EndDate); err != nil {
		return 0, err
	}
	return u.bannerService.CreateBanner(ctx, dto)
}
