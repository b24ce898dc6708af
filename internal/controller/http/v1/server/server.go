package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/controller/http/admin"
	handlers "github.com/The-Gleb/banner_admin/internal/controller/http/v1/handler"
	middleware "github.com/The-Gleb/banner_admin/internal/controller/http/v1/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	apiPrefix     = "/api/v1"
	uploadsPrefix = "/uploads"
)

type httpServer struct {
	server *http.Server
}

func NewServer(
	address string,
	createBannerUsecase handlers.CreateBannerUsecase,
	deleteBannerUsecase handlers.DeleteBannerUsecase,
	getBannerUsecase handlers.GetBannerUsecase,
	getBannersUsecase handlers.GetBannersUsecase,
	updateBannerUsecase handlers.UpdateBannerUsecase,
	adminHandler *admin.Handler,
	uploads http.Handler,
) (*httpServer, error) {

	createBannerHandler := handlers.NewCreateBannerHandler(createBannerUsecase)
	deleteBannerHandler := handlers.NewDeleteBannerHandler(deleteBannerUsecase)
	getBannerHandler := handlers.NewGetBannerHandler(getBannerUsecase)
	getBannersHandler := handlers.NewGetBannersHandler(getBannersUsecase)
	updateBannerHandler := handlers.NewUpdateBannerHandler(updateBannerUsecase)

	loggingMiddleware := middleware.NewLoggingMiddleware(slog.Default())

	r := chi.NewMux()
	r.Use(chimiddleware.RequestID)
	r.Use(loggingMiddleware.Do)
	r.Use(chimiddleware.Recoverer)

	api := chi.NewMux()
	createBannerHandler.AddToRouter(api)
	deleteBannerHandler.AddToRouter(api)
	getBannerHandler.AddToRouter(api)
	getBannersHandler.AddToRouter(api)
	updateBannerHandler.AddToRouter(api)
	r.Mount(apiPrefix, api)

	adminHandler.AddToRouter(r)

	r.Handle(uploadsPrefix+"/*", http.StripPrefix(uploadsPrefix, uploads))

	server := &http.Server{
		Addr:    address,
		Handler: r,
	}

	return &httpServer{server: server}, nil
}

func (s *httpServer) Start() error {
	return s.server.ListenAndServe()
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
