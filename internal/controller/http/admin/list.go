package admin

import (
	"log/slog"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/editor"
)

type listPage struct {
	Banners []editor.Record
	Flash   *flash
	Error   string
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page := listPage{Flash: popFlash(w, r)}

	banners, err := h.api.ListBanners(r.Context(), listPageSize, 0)
	if err != nil {
		slog.Error("error listing banners", "error", err)
		page.Error = "Banners could not be loaded"
		h.render(w, http.StatusBadGateway, "list.html", page)
		return
	}
	page.Banners = banners

	h.render(w, http.StatusOK, "list.html", page)
}
