package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	getBannersURL = "/banners"
)

type GetBannersUsecase interface {
	GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error)
}

type getBannersHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetBannersUsecase
}

func NewGetBannersHandler(usecase GetBannersUsecase) *getBannersHandler {
	return &getBannersHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getBannersHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Get(getBannersURL, handler.ServeHTTP)
}

func (h *getBannersHandler) Middlewares(md ...func(http.Handler) http.Handler) *getBannersHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getBannersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	strLimit := r.URL.Query().Get("limit")
	strOffset := r.URL.Query().Get("offset")

	slog.Debug("query", "limit", strLimit, "offset", strOffset)

	var (
		limit, offset int
		err           error
	)
	if strLimit != "" {
		limit, err = strconv.Atoi(strLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}
	if strOffset != "" {
		offset, err = strconv.Atoi(strOffset)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
	}

	banners, err := h.usecase.GetBanners(r.Context(), entity.GetBannersDTO{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, banners)
}
