package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	handlers "github.com/The-Gleb/banner_admin/internal/controller/http/v1/handler"
	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/The-Gleb/banner_admin/internal/editor"
	"github.com/The-Gleb/banner_admin/internal/errors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type memUsecase struct {
	banners map[int64]entity.Banner
	updates []entity.UpdateBannerDTO
	images  []string
}

func (u *memUsecase) GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {
	b, ok := u.banners[dto.BannerID]
	if !ok {
		return entity.Banner{}, errors.NewDomainError(errors.ErrNoDataFound, "banner %d", dto.BannerID)
	}
	return b, nil
}

func (u *memUsecase) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error) {
	banners := make([]entity.Banner, 0, len(u.banners))
	for id := int64(1); id <= int64(len(u.banners)); id++ {
		banners = append(banners, u.banners[id])
	}
	return banners, nil
}

func (u *memUsecase) UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error {
	if _, ok := u.banners[dto.BannerID]; !ok {
		return errors.NewDomainError(errors.ErrNoDataFound, "banner %d", dto.BannerID)
	}
	if dto.EndDate != nil && dto.EndDate.Before(dto.StartDate) {
		return errors.NewDomainError(errors.ErrBadRequest, "end date is before start date")
	}
	if dto.Image != nil {
		data, err := io.ReadAll(dto.Image.Reader)
		if err != nil {
			return err
		}
		u.images = append(u.images, dto.Image.Filename+":"+string(data))
	}
	u.updates = append(u.updates, dto)
	return nil
}

func newTestAPI(t *testing.T) (*Client, *memUsecase) {
	t.Helper()

	end := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
	u := &memUsecase{banners: map[int64]entity.Banner{
		1: {
			ID:        1,
			Content:   entity.Content{Title: "Summer sale", CTA: "Shop", CTALink: "/shop", BgColor: "bg-red-500"},
			Image:     "/banners/summer.png",
			Order:     1,
			IsActive:  true,
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
		},
		2: {
			ID:        2,
			Content:   entity.Content{Title: "Winter sale"},
			StartDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}}

	r := chi.NewRouter()
	handlers.NewGetBannerHandler(u).AddToRouter(r)
	handlers.NewGetBannersHandler(u).AddToRouter(r)
	handlers.NewUpdateBannerHandler(u).AddToRouter(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return NewClient(ts.URL+"/", 5*time.Second), u
}

func TestClient_FetchBannerByID(t *testing.T) {
	c, _ := newTestAPI(t)

	res, err := c.FetchBannerByID(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, editor.Record{
		ID:        "1",
		Title:     "Summer sale",
		Image:     "/banners/summer.png",
		CTA:       "Shop",
		CTALink:   "/shop",
		BgColor:   "bg-red-500",
		Order:     1,
		IsActive:  true,
		StartDate: "2024-06-01T00:00:00Z",
		EndDate:   "2024-08-31T00:00:00Z",
	}, *res.Data)

	res, err = c.FetchBannerByID(context.Background(), "99")
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Nil(t, res.Data)
	require.Contains(t, res.Error, "banner not found")
}

func TestClient_UpdateBanner(t *testing.T) {
	c, u := newTestAPI(t)

	values, err := editor.Validate(editor.Input{
		Title:     "Autumn sale",
		Subtitle:  "Leaves and deals",
		Order:     "5",
		IsActive:  true,
		StartDate: "2024-09-01",
		EndDate:   "2024-11-30",
	})
	require.NoError(t, err)

	payload := editor.BuildPayload(values, &editor.File{Name: "autumn.png", Content: strings.NewReader("png")}, "/banners/summer.png")

	res, err := c.UpdateBanner(context.Background(), "1", payload)
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	require.Len(t, u.updates, 1)
	got := u.updates[0]
	require.Equal(t, int64(1), got.BannerID)
	require.Equal(t, entity.Content{
		Title:    "Autumn sale",
		Subtitle: "Leaves and deals",
		CTA:      entity.DefaultCTA,
		CTALink:  entity.DefaultCTALink,
		BgColor:  entity.DefaultBgColor,
	}, got.Content)
	require.Equal(t, 5, got.Order)
	require.True(t, got.IsActive)
	require.Equal(t, "2024-09-01", got.StartDate.Format(entity.DateLayout))
	require.Equal(t, "2024-11-30", got.EndDate.Format(entity.DateLayout))
	require.Empty(t, got.CurrentImage)
	require.Equal(t, []string{"autumn.png:png"}, u.images)
}

func TestClient_UpdateBanner_retentionMarker(t *testing.T) {
	c, u := newTestAPI(t)

	values, err := editor.Validate(editor.Input{Title: "Winter sale", StartDate: "2024-12-01"})
	require.NoError(t, err)

	res, err := c.UpdateBanner(context.Background(), "2", editor.BuildPayload(values, nil, "/banners/winter.png"))
	require.NoError(t, err)
	require.True(t, res.Success)

	require.Equal(t, "/banners/winter.png", u.updates[0].CurrentImage)
	require.Nil(t, u.updates[0].EndDate)
	require.Empty(t, u.images)
}

func TestClient_UpdateBanner_businessFailure(t *testing.T) {
	c, u := newTestAPI(t)

	values, err := editor.Validate(editor.Input{Title: "t", StartDate: "2024-12-01", EndDate: "2024-11-01"})
	require.NoError(t, err)

	res, err := c.UpdateBanner(context.Background(), "2", editor.BuildPayload(values, nil, ""))
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Contains(t, res.Error, "end date is before start date")
	require.Empty(t, u.updates)
}

func TestClient_ListBanners(t *testing.T) {
	c, _ := newTestAPI(t)

	records, err := c.ListBanners(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Summer sale", records[0].Title)
	require.Equal(t, "2", records[1].ID)
	require.Empty(t, records[1].EndDate)
}

func TestClient_transportErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, time.Second)

	_, err := c.FetchBannerByID(context.Background(), "1")
	require.Error(t, err)

	_, err = c.UpdateBanner(context.Background(), "1", &editor.Payload{})
	require.Error(t, err)

	ts.Close()
	_, err = c.FetchBannerByID(context.Background(), "1")
	require.Error(t, err)
}
