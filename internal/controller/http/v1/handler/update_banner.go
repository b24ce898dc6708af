package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	updateBannerURL = "/banners/{id}"
)

type UpdateBannerUsecase interface {
	UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error
}

type updateBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     UpdateBannerUsecase
}

func NewUpdateBannerHandler(usecase UpdateBannerUsecase) *updateBannerHandler {
	return &updateBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *updateBannerHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Put(updateBannerURL, handler.ServeHTTP)
}

func (h *updateBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *updateBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *updateBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	id, err := bannerIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	form, err := parseBannerForm(r)
	if err != nil {
		slog.Debug("bad request", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer form.Close()

	err = h.usecase.UpdateBanner(r.Context(), entity.UpdateBannerDTO{
		BannerID:     id,
		Content:      form.content,
		Image:        form.image,
		CurrentImage: form.currentImage,
		Order:        form.order,
		IsActive:     form.isActive,
		StartDate:    form.startDate,
		EndDate:      form.endDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, nil)
}
