package usecase

import (
	"context"
	"log/slog"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
)

type deleteBannerUsecase struct {
	bannerService BannerService
}

func NewDeleteBannerUsecase(bannerService BannerService) *deleteBannerUsecase {
	return &deleteBannerUsecase{bannerService}
}

func (u *deleteBannerUsecase) DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error {
	if err := u.bannerService.DeleteBanner(ctx, dto); err != nil {
		return err
	}
	slog.Info("banner deleted", "banner_id", dto.BannerID)
	return nil
}
