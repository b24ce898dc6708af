package usecase

import (
	"context"
	"log/slog"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
)

type updateBannerUsecase struct {
	bannerService BannerService
}

func NewUpdateBannerUsecase(bannerService BannerService) *updateBannerUsecase {
	return &updateBannerUsecase{bannerService}
}

func (u *updateBannerUsecase) UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error {
	dto.Content = normalizeContent(dto.Content)
	if err := checkBanner(dto.Content, dto.Order, dto.StartDate, dto.EndDate); err != nil {
		return err
	}

	slog.Debug("updating banner",
		"banner_id", dto.BannerID,
		"new_image", dto.Image != nil,
		"keep_image", dto.CurrentImage != "",
	)

	return u.bannerService.UpdateBanner(ctx, dto)
}
