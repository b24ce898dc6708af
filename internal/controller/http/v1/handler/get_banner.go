package v1

import (
	"context"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	getBannerURL = "/banners/{id}"
)

type GetBannerUsecase interface {
	GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error)
}

type getBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetBannerUsecase
}

func NewGetBannerHandler(usecase GetBannerUsecase) *getBannerHandler {
	return &getBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getBannerHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(getBannerURL, handler.ServeHTTP)
}

func (h *getBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *getBannerHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	id, err := bannerIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	banner, err := h.usecase.GetBanner(r.Context(), entity.GetBannerDTO{BannerID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, banner)
}
