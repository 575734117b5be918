package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-auth/internal/app"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/service"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/internal/utils"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatusMap is matched in order, so service errors that wrap store
// errors are listed first.
var errorStatusMap = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrDuplicateIdentity, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrDuplicateEmail, http.StatusBadRequest, app.MsgEmailAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrEmailNotFound, http.StatusNotFound, app.MsgEmailNotFound},
	{service.ErrInvalidOrExpiredCode, http.StatusBadRequest, app.MsgInvalidOrExpiredCode},
	{service.ErrNotificationFailed, http.StatusBadGateway, app.MsgNotificationFailed},
	{service.ErrInvalidResetGrant, http.StatusUnauthorized, app.MsgInvalidResetToken},
	{service.ErrProviderError, http.StatusBadGateway, app.MsgProviderError},
	{service.ErrUnknownOAuthState, http.StatusNotFound, app.MsgUnknownState},
	{service.ErrFederatedLoginDisabled, http.StatusNotFound, http.StatusText(http.StatusNotFound)},

	{ErrInvalidRequest, http.StatusBadRequest, app.MsgInvalidRequest},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyExists},
	{store.ErrStoreUnavailable, http.StatusInternalServerError, app.MsgDatabaseUnavailable},
}

// statusFromError returns the status code and client message for err.
// Unknown errors map to 500 without exposing their text.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err and writes the mapped JSON error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
