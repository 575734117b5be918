package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
	"github.com/go-chi/chi/v5"
)

// googleAuth redirects the browser to the provider consent page. The state
// value is also returned in a header so that non-browser clients can poll
// the status endpoint.
func (h *Handler) googleAuth(w http.ResponseWriter, r *http.Request) {
	authURL, state, err := h.services.AuthService.BeginFederatedLogin(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "starting federated login failed")
		return
	}

	w.Header().Set("X-OAuth-State", state)
	http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
}

func (h *Handler) googleAuthCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status, err := h.services.AuthService.CompleteFederatedLogin(r.Context(), query.Get("state"), query.Get("code"))
	if err != nil {
		writeServiceError(w, r, err, "federated login callback failed")
		return
	}

	utils.WriteJSON(w, models.OAuthStatus{State: status.State, Status: status.Status}, http.StatusOK)
}

func (h *Handler) googleAuthStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.AuthService.FederatedLoginStatus(r.Context(), chi.URLParam(r, "state"))
	if err != nil {
		writeServiceError(w, r, err, "federated login status lookup failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
