package editor

import (
	"bytes"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	v := Values{
		Title:     "Summer sale",
		Order:     4,
		IsActive:  false,
		StartDate: "2024-06-01",
	}

	p := BuildPayload(v, nil, "")

	require.Equal(t, []Field{
		{"title", "Summer sale"},
		{"cta", entity.DefaultCTA},
		{"ctaLink", entity.DefaultCTALink},
		{"bgColor", entity.DefaultBgColor},
		{"order", "4"},
		{"isActive", "false"},
		{"startDate", "2024-06-01"},
	}, p.Fields)
	require.Nil(t, p.Image)

	v.Subtitle, v.EndDate, v.IsActive = "Up to 50% off", "2024-08-31", true
	p = BuildPayload(v, nil, "/banners/summer.png")

	subtitle, ok := p.Get("subtitle")
	require.True(t, ok)
	require.Equal(t, "Up to 50% off", subtitle)
	end, ok := p.Get("endDate")
	require.True(t, ok)
	require.Equal(t, "2024-08-31", end)
	active, _ := p.Get("isActive")
	require.Equal(t, "true", active)
	marker, ok := p.Get("currentImage")
	require.True(t, ok)
	require.Equal(t, "/banners/summer.png", marker)
}

func TestPayload_Encode(t *testing.T) {
	p := BuildPayload(
		Values{Title: "t", StartDate: "2024-06-01"},
		&File{Name: "new.png", Content: strings.NewReader("image bytes")},
		"/banners/old.png",
	)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, p.Encode(w))
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	require.Equal(t, []string{"t"}, form.Value["title"])
	require.Equal(t, []string{"0"}, form.Value["order"])
	require.NotContains(t, form.Value, "currentImage")

	require.Len(t, form.File["image"], 1)
	fh := form.File["image"][0]
	require.Equal(t, "new.png", fh.Filename)
	f, err := fh.Open()
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "image bytes", string(data))
}

func TestPreviewURL(t *testing.T) {
	require.Equal(t, "/uploads/banners/a.png", PreviewURL("/uploads", "/banners/a.png"))
	require.Equal(t, "https://cdn.example.com/uploads/banners/a.png", PreviewURL("https://cdn.example.com/uploads/", "banners/a.png"))
	require.Empty(t, PreviewURL("/uploads", ""))
}
