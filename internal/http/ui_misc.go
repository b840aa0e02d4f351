package httpx

import (
	"net/http"
)

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{
		Title:       "Page Not Found",
		PageTitle:   "Page Not Found",
		CurrentPage: PageNotFound,
	})
	w.WriteHeader(http.StatusNotFound)
	h.renderPage(w, r, data)
}

// Healthz reports process liveness.
// GET /healthz.
func Healthz(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
