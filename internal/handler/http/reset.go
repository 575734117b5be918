package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-auth/internal/app"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
)

// generateResetCode never echoes the code; it is only delivered by the notifier.
func (h *Handler) generateResetCode(w http.ResponseWriter, r *http.Request) {
	var req models.ResetCodeRequest
	if err := bindRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid reset code request")
		return
	}

	if err := h.services.AuthService.RequestReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err, "reset code request failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgResetCodeGenerated}, http.StatusOK)
}

func (h *Handler) verifyResetCode(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyResetCodeRequest
	if err := bindRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid verify request")
		return
	}

	grant, err := h.services.AuthService.VerifyReset(r.Context(), req.Email, req.Code)
	if err != nil {
		writeServiceError(w, r, err, "reset code verification failed")
		return
	}

	utils.WriteJSON(w, models.VerifyResetCodeResponse{
		Message:    app.MsgCodeVerified,
		ResetToken: grant.Token,
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := bindRequest(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid reset password request")
		return
	}

	err := h.services.AuthService.ResetPassword(r.Context(), req.Email, req.NewPassword, req.ResetToken)
	if err != nil {
		writeServiceError(w, r, err, "password reset failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordResetSuccess}, http.StatusOK)
}
