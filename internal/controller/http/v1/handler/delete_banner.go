package v1

import (
	"context"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	deleteBannerURL = "/banners/{id}"
)

type DeleteBannerUsecase interface {
	DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error
}

type deleteBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     DeleteBannerUsecase
}

func NewDeleteBannerHandler(usecase DeleteBannerUsecase) *deleteBannerHandler {
	return &deleteBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *deleteBannerHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Delete(deleteBannerURL, handler.ServeHTTP)
}

func (h *deleteBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *deleteBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *deleteBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	id, err := bannerIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.usecase.DeleteBanner(r.Context(), entity.DeleteBannerDTO{BannerID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, nil)
}
