package usecase

import (
	"context"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type getBannersUsecase struct {
	bannerService BannerService
}

func NewGetBannersUsecase(bannerService BannerService) *getBannersUsecase {
	return &getBannersUsecase{bannerService}
}

func (u *getBannersUsecase) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error) {
	switch {
	case dto.Limit <= 0:
		dto.Limit = DefaultPageSize
	case dto.Limit > MaxPageSize:
		dto.Limit = MaxPageSize
	}
	if dto.Offset < 0 {
		dto.Offset = 0
	}
	return u.bannerService.GetBanners(ctx, dto)
}
