package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-auth/internal/app"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if err := bindRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid signup request")
		return
	}

	userID, err := h.services.AuthService.Signup(ctx, req.Nickname, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "signup failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", userID).Msg("user signed up")
	utils.WriteJSON(w, models.UserIDResponse{Message: app.MsgUserCreated, UserID: userID}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := bindRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid login request")
		return
	}

	userID, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	utils.WriteJSON(w, models.UserIDResponse{Message: app.MsgLoginSuccessful, UserID: userID}, http.StatusOK)
}
