package admin

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
)

const flashCookie = "banner_admin_flash"

type flash struct {
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// flashNotifier remembers the last message for the current response and
// carries success messages over a redirect in a cookie.
type flashNotifier struct {
	w    http.ResponseWriter
	last *flash
}

func (n *flashNotifier) Success(message, description string) {
	f := flash{Kind: "success", Message: message, Description: description}
	n.last = &f
	setFlash(n.w, f)
}

func (n *flashNotifier) Failure(message, description string) {
	n.last = &flash{Kind: "error", Message: message, Description: description}
}

// redirectNavigator records the route; the handler redirects once the
// submit returns.
type redirectNavigator struct {
	route string
}

func (n *redirectNavigator) Navigate(route string) {
	n.route = route
}

func setFlash(w http.ResponseWriter, f flash) {
	b, err := json.Marshal(f)
	if err != nil {
		slog.Error("error encoding flash", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/admin",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie.
func popFlash(w http.ResponseWriter, r *http.Request) *flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
	})

	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		slog.Warn("malformed flash cookie", "error", err)
		return nil
	}
	var f flash
	if err := json.Unmarshal(b, &f); err != nil {
		slog.Warn("malformed flash cookie", "error", err)
		return nil
	}
	return &f
}
