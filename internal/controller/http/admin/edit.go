package admin

import (
	stdErrors "errors"
	"net/http"

	"github.com/The-Gleb/banner_admin/internal/editor"
	"github.com/go-chi/chi/v5"
)

const (
	maxFormMemory = 32 << 20

	inProgressDescription = "Another update of this banner is still in progress"
)

type editPage struct {
	ID           string
	Values       editor.Input
	CurrentImage string
	LoadFailed   bool
	Errors       editor.ValidationErrors
	Flash        *flash
}

func pageFromForm(form *editor.Form) editPage {
	return editPage{
		ID:           form.ID(),
		Values:       form.Values(),
		CurrentImage: form.CurrentImage(),
		LoadFailed:   form.LoadFailed(),
	}
}

func (h *Handler) showEdit(w http.ResponseWriter, r *http.Request) {
	form := editor.NewForm(h.api, &flashNotifier{w: w}, &redirectNavigator{})
	form.Load(r.Context(), chi.URLParam(r, "id"))

	page := pageFromForm(form)
	page.Flash = popFlash(w, r)

	h.render(w, http.StatusOK, "edit.html", page)
}

func (h *Handler) submitEdit(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !stdErrors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	// each request gets its own editor.Form, so concurrent posts for one
	// banner are serialized here
	if _, busy := h.inflight.LoadOrStore(id, struct{}{}); busy {
		h.render(w, http.StatusConflict, "edit.html", editPage{
			ID:     id,
			Values: inputFromRequest(r),
			Flash: &flash{
				Kind:        "error",
				Message:     editor.UpdateFailedMessage,
				Description: inProgressDescription,
			},
		})
		return
	}
	defer h.inflight.Delete(id)

	notifier := &flashNotifier{w: w}
	navigator := &redirectNavigator{}
	form := editor.NewForm(h.api, notifier, navigator)

	form.Load(r.Context(), id)
	if form.LoadFailed() {
		h.render(w, http.StatusOK, "edit.html", pageFromForm(form))
		return
	}

	if r.PostFormValue("removeImage") != "" {
		form.ClearCurrentImage()
	}

	var image *editor.File
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = &editor.File{Name: header.Filename, Content: file}
	}

	err = form.Submit(r.Context(), inputFromRequest(r), image)

	var verrs editor.ValidationErrors
	switch {
	case err == nil:
		http.Redirect(w, r, navigator.route, http.StatusSeeOther)
	case stdErrors.As(err, &verrs):
		page := pageFromForm(form)
		page.Errors = verrs
		h.render(w, http.StatusUnprocessableEntity, "edit.html", page)
	default:
		page := pageFromForm(form)
		page.Flash = notifier.last
		h.render(w, http.StatusOK, "edit.html", page)
	}
}

func inputFromRequest(r *http.Request) editor.Input {
	return editor.Input{
		Title:     r.PostFormValue("title"),
		Subtitle:  r.PostFormValue("subtitle"),
		CTA:       r.PostFormValue("cta"),
		CTALink:   r.PostFormValue("ctaLink"),
		BgColor:   r.PostFormValue("bgColor"),
		Order:     r.PostFormValue("order"),
		IsActive:  r.PostFormValue("isActive") != "",
		StartDate: r.PostFormValue("startDate"),
		EndDate:   r.PostFormValue("endDate"),
	}
}
