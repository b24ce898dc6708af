package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	createBannerURL = "/banners"
)

type CreateBannerUsecase interface {
	CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error)
}

type createBannerHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     CreateBannerUsecase
}

func NewCreateBannerHandler(usecase CreateBannerUsecase) *createBannerHandler {
	return &createBannerHandler{
		usecase:     usecase,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *createBannerHandler) AddToRouter(r *chi.Mux) {
	var handler http.Handler
	handler = h
	for _, md := range h.middlewares {
		handler = md(handler)
	}

	r.Post(createBannerURL, handler.ServeHTTP)
}

func (h *createBannerHandler) Middlewares(md ...func(http.Handler) http.Handler) *createBannerHandler {

	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *createBannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	form, err := parseBannerForm(r)
	if err != nil {
		slog.Debug("bad request", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer form.Close()

	id, err := h.usecase.CreateBanner(r.Context(), entity.CreateBannerDTO{
		Content:   form.content,
		Image:     form.image,
		Order:     form.order,
		IsActive:  form.isActive,
		StartDate: form.startDate,
		EndDate:   form.endDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, struct {
		ID int64 `json:"id"`
	}{ID: id})
}
