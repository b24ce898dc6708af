package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const maxFormMemory = 32 << 20

// bannerForm is the multipart body shared by create and update requests.
type bannerForm struct {
	content      entity.Content
	order        int
	isActive     bool
	startDate    time.Time
	endDate      *time.Time
	image        *entity.ImageUpload
	currentImage string

	file multipart.File
}

func (f *bannerForm) Close() {
	if f.file != nil {
		f.file.Close()
	}
}

func parseBannerForm(r *http.Request) (*bannerForm, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, fmt.Errorf("error parsing multipart form: %w", err)
	}

	f := &bannerForm{
		content: entity.Content{
			Title:    r.PostFormValue("title"),
			Subtitle: r.PostFormValue("subtitle"),
			CTA:      r.PostFormValue("cta"),
			CTALink:  r.PostFormValue("ctaLink"),
			BgColor:  r.PostFormValue("bgColor"),
		},
		currentImage: r.PostFormValue("currentImage"),
	}

	var err error
	f.order, err = strconv.Atoi(strings.TrimSpace(r.PostFormValue("order")))
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	if v := r.PostFormValue("isActive"); v != "" {
		f.isActive, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid isActive: %w", err)
		}
	}

	f.startDate, err = time.Parse(entity.DateLayout, r.PostFormValue("startDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}

	if v := r.PostFormValue("endDate"); v != "" {
		end, err := time.Parse(entity.DateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		f.endDate = &end
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		f.file = file
		f.image = &entity.ImageUpload{Filename: header.Filename, Reader: file}
	case err != http.ErrMissingFile:
		return nil, fmt.Errorf("invalid image: %w", err)
	}

	return f, nil
}

func bannerIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid banner id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}
