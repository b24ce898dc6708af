package usecase

import (
	"context"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
)

type getBannerUsecase struct {
	bannerService BannerService
}

func NewGetBannerUsecase(bannerService BannerService) *getBannerUsecase {
	return &getBannerUsecase{bannerService}
}

func (u *getBannerUsecase) GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {
	return u.bannerService.GetBanner(ctx, dto)
}
