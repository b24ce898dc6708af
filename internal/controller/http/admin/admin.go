// Package admin serves the server-rendered banner admin pages. The edit page
// is a thin shell around editor.Form.
package admin

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/The-Gleb/banner_admin/internal/editor"
	"github.com/go-chi/chi/v5"
)

const (
	listURL = "/admin/banners"
	editURL = "/admin/banners/{id}/edit"

	listPageSize = 100
)

// BannerClient is the backend the admin pages read and write through.
type BannerClient interface {
	editor.BannerAPI
	ListBanners(ctx context.Context, limit, offset int) ([]editor.Record, error)
}

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	api        BannerClient
	uploadsURL string
	pages      map[string]*template.Template

	// banner ids with an update in flight
	inflight sync.Map
}

func NewHandler(api BannerClient, uploadsURL string) (*Handler, error) {
	h := &Handler{
		api:        api,
		uploadsURL: uploadsURL,
		pages:      make(map[string]*template.Template),
	}

	funcs := template.FuncMap{
		"preview": func(ref string) string { return editor.PreviewURL(uploadsURL, ref) },
		"date":    editor.DateOnly,
	}

	for _, page := range []string{"list.html", "edit.html"} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		h.pages[page] = t
	}

	return h, nil
}

func (h *Handler) AddToRouter(r *chi.Mux) {
	r.Get("/admin", http.RedirectHandler(listURL, http.StatusMovedPermanently).ServeHTTP)
	r.Get(listURL, h.list)
	r.Get(editURL, h.showEdit)
	r.Post(editURL, h.submitEdit)
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages[page].Execute(&buf, data); err != nil {
		slog.Error("error rendering admin page", "page", page, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
