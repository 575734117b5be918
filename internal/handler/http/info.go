package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-auth/internal/app"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgWelcome}, http.StatusOK)
}

func (h *Handler) testDB(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckDatabase(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database check failed")
		utils.WriteError(w, app.MsgDatabaseFailed, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDatabaseOK}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
