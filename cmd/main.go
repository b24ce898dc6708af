package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/The-Gleb/banner_admin/internal/adapter/api/rest"
	cache "github.com/The-Gleb/banner_admin/internal/adapter/cache/redis"
	db "github.com/The-Gleb/banner_admin/internal/adapter/db/postgres"
	"github.com/The-Gleb/banner_admin/internal/adapter/storage/images"
	"github.com/The-Gleb/banner_admin/internal/config"
	"github.com/The-Gleb/banner_admin/internal/controller/http/admin"
	v1 "github.com/The-Gleb/banner_admin/internal/controller/http/v1/server"
	"github.com/The-Gleb/banner_admin/internal/domain/service"
	"github.com/The-Gleb/banner_admin/internal/domain/usecase"
	"github.com/The-Gleb/banner_admin/internal/logger"
	"github.com/The-Gleb/banner_admin/pkg/client/postgresql"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	configFile := os.Getenv("CONFIG_FILE")
	cfg := config.MustBuild(configFile)

	logger.Initialize(cfg.LogLevel)
	slog.Info("config is built", "run_address", cfg.RunAddress, "db_host", cfg.DB.Host, "uploads", cfg.Uploads.Dir)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", cfg.DB.Username, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DbName)
	postgresClient, err := postgresql.NewClient(ctx, dsn)
	if err != nil {
		return err
	}
	defer postgresClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: "",
		DB:       0,
	})
	defer redisClient.Close()

	err = db.RunMigrations(dsn)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create uploads dir: %w", err)
	}
	imageStore := images.NewImageStore(afero.NewBasePathFs(afero.NewOsFs(), cfg.Uploads.Dir))

	bannerStorage := db.NewBannerStorage(postgresClient)
	bannerCache := cache.NewRedisCache(redisClient, cfg.CacheTTL())

	bannerService := service.NewBannerService(bannerStorage, bannerCache, imageStore)

	createBannerUsecase := usecase.NewCreateBannerUsecase(bannerService)
	deleteBannerUsecase := usecase.NewDeleteBannerUsecase(bannerService)
	getBannerUsecase := usecase.NewGetBannerUsecase(bannerService)
	getBannersUsecase := usecase.NewGetBannersUsecase(bannerService)
	updateBannerUsecase := usecase.NewUpdateBannerUsecase(bannerService)

	apiClient := rest.NewClient(cfg.Admin.APIBaseURL, cfg.Admin.Timeout())
	adminHandler, err := admin.NewHandler(apiClient, cfg.Uploads.URL)
	if err != nil {
		return err
	}

	s, err := v1.NewServer(
		cfg.RunAddress,
		createBannerUsecase,
		deleteBannerUsecase,
		getBannerUsecase,
		getBannersUsecase,
		updateBannerUsecase,
		adminHandler,
		imageStore.Handler(),
	)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		<-ctx.Done()

		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Stop(ctxShutdown)
		if err != nil {
			slog.Error("server shutdown error", "error", err)
			return
		}
		slog.Info("server was successfuly shutdown")
	}()

	slog.Info("starting server", "address", cfg.RunAddress)
	if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		cancel()
	}

	wg.Wait()

	return nil
}
