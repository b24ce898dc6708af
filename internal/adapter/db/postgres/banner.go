package db

import (
	"context"
	"embed"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/The-Gleb/banner_admin/internal/domain/service"
	"github.com/The-Gleb/banner_admin/internal/errors"
	"github.com/The-Gleb/banner_admin/pkg/client/postgresql"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ service.BannerStorage = new(bannerStorage)

const bannerColumns = `id, title, subtitle, image, cta, cta_link, bg_color,
	sort_order, is_active, start_date, end_date, created_at, updated_at`

type bannerStorage struct {
	client postgresql.Client
}

func NewBannerStorage(client postgresql.Client) *bannerStorage {
	return &bannerStorage{client: client}
}

//go:embed migration/*.sql
var migrationsDir embed.FS

func RunMigrations(dsn string) error {

	d, err := iofs.New(migrationsDir, "migration")
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !stdErrors.Is(err, migrate.ErrNoChange) {
			slog.Error(err.Error())
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

func (s *bannerStorage) CreateBanner(ctx context.Context, dto entity.StoreBannerDTO) (int64, error) {

	row := s.client.QueryRow(
		ctx,
		`INSERT INTO banners
			(title, subtitle, image, cta, cta_link, bg_color,
			sort_order, is_active, start_date, end_date)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;`,
		dto.Content.Title, dto.Content.Subtitle, dto.Image,
		dto.Content.CTA, dto.Content.CTALink, dto.Content.BgColor,
		dto.Order, dto.IsActive, dto.StartDate, dto.EndDate,
	)

	var id int64
	err := row.Scan(&id)
	if err != nil {
		slog.Error("error inserting into banners",
			"error", err,
		)
		return 0, classify(err)
	}

	return id, nil
}

func (s *bannerStorage) GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {

	row := s.client.QueryRow(
		ctx,
		`SELECT `+bannerColumns+`
		FROM banners
		WHERE id = $1;`,
		dto.BannerID,
	)

	banner, err := scanBanner(row)
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			return entity.Banner{}, errors.NewDomainError(errors.ErrNoDataFound, "banner %d", dto.BannerID)
		}
		slog.Error("error scanning banner row",
			"error", err,
			"banner_id", dto.BannerID,
		)
		return entity.Banner{}, errors.NewDomainError(errors.ErrDB, "")
	}

	return banner, nil
}

func (s *bannerStorage) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error) {

	rows, err := s.client.Query(
		ctx,
		`SELECT `+bannerColumns+`
		FROM banners
		ORDER BY sort_order, id
		LIMIT $1
		OFFSET $2;`,
		dto.Limit, dto.Offset,
	)
	if err != nil {
		slog.Error("error selecting banners",
			"error", err,
		)
		return nil, errors.NewDomainError(errors.ErrDB, "")
	}

	banners, err := pgx.CollectRows[entity.Banner](rows, func(row pgx.CollectableRow) (entity.Banner, error) {
		return scanBanner(row)
	})
	if err != nil {
		slog.Error("error collecting rows",
			"error", err,
		)
		return nil, errors.NewDomainError(errors.ErrDB, "")
	}

	return banners, nil
}

// UpdateBanner overwrites every editable column and returns the image
// reference that was stored before the update.
func (s *bannerStorage) UpdateBanner(ctx context.Context, dto entity.StoreBannerDTO) (string, error) {

	tx, err := s.client.Begin(ctx)
	if err != nil {
		slog.Error("error beginnig transaction",
			"error", err,
		)
		return "", errors.NewDomainError(errors.ErrDB, "")
	}
	defer tx.Rollback(ctx)

	var previousImage string
	err = tx.QueryRow(
		ctx,
		`SELECT image
		FROM banners
		WHERE id = $1
		FOR UPDATE;`,
		dto.BannerID,
	).Scan(&previousImage)
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			return "", errors.NewDomainError(errors.ErrNoDataFound, "banner %d", dto.BannerID)
		}
		slog.Error("error selecting banner image",
			"error", err,
		)
		return "", errors.NewDomainError(errors.ErrDB, "")
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE banners
		SET
			title = $2,
			subtitle = $3,
			image = CASE WHEN $12 THEN image ELSE $4 END,
			cta = $5,
			cta_link = $6,
			bg_color = $7,
			sort_order = $8,
			is_active = $9,
			start_date = $10,
			end_date = $11,
			updated_at = NOW()
		WHERE id = $1;`,
		dto.BannerID,
		dto.Content.Title, dto.Content.Subtitle, dto.Image,
		dto.Content.CTA, dto.Content.CTALink, dto.Content.BgColor,
		dto.Order, dto.IsActive, dto.StartDate, dto.EndDate,
		dto.KeepImage,
	)
	if err != nil {
		slog.Error("error updating banners",
			"error", err,
		)
		return "", classify(err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		slog.Error("error commiting transaction",
			"error", err,
		)
		return "", errors.NewDomainError(errors.ErrDB, "")
	}

	return previousImage, nil
}

// DeleteBanner removes the banner and returns its image reference.
func (s *bannerStorage) DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) (string, error) {

	var image string
	err := s.client.QueryRow(
		ctx,
		`DELETE FROM banners
		WHERE id = $1
		RETURNING image;`,
		dto.BannerID,
	).Scan(&image)
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			slog.Error("error deleting from banners, id not found", "banner_id", dto.BannerID)
			return "", errors.NewDomainError(errors.ErrNoDataFound, "banner %d", dto.BannerID)
		}
		slog.Error("error deleting from banners",
			"error", err,
		)
		return "", errors.NewDomainError(errors.ErrDB, "")
	}

	return image, nil
}

func scanBanner(row pgx.Row) (entity.Banner, error) {
	var b entity.Banner
	err := row.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.Image,
		&b.CTA, &b.CTALink, &b.BgColor,
		&b.Order, &b.IsActive, &b.StartDate, &b.EndDate,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return errors.NewDomainError(errors.ErrBadRequest, "constraint %s violated", pgErr.ConstraintName)
		}
	}
	return errors.NewDomainError(errors.ErrDB, "")
}
