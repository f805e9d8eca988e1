package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-life-keeper/internal/app"
	"github.com/MKhiriev/go-life-keeper/internal/service"
	"github.com/MKhiriev/go-life-keeper/internal/store"
	"github.com/MKhiriev/go-life-keeper/models"
)

type errorClass struct {
	err    error
	status int
	msg    string
}

// errorClasses is checked in order; storage faults come first so that a
// wrapped not-found inside a failed pass still reads as a server error.
var errorClasses = []errorClass{
	{service.ErrStorage, http.StatusInternalServerError, app.MsgInternalServerError},

	{ErrUnknownEngine, http.StatusNotFound, app.MsgUnknownEngine},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrIntegrityCheckFailed, http.StatusBadRequest, app.MsgIntegrityCheckFailed},

	{service.ErrSessionLocked, http.StatusLocked, app.MsgSessionLocked},
	{service.ErrKindMismatch, http.StatusBadRequest, app.MsgKindMismatch},
	{service.ErrInvalidRecordBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidSettings, http.StatusBadRequest, app.MsgInvalidSettings},
	{service.ErrInvalidSalt, http.StatusBadRequest, app.MsgInvalidSalt},

	{models.ErrUnknownRecordKind, http.StatusNotFound, app.MsgUnknownRecordKind},
	{models.ErrInvalidStrategy, http.StatusBadRequest, app.MsgInvalidStrategy},
	{models.ErrInvalidMutationType, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrRecordNotFound, http.StatusNotFound, app.MsgDataNotFound},
	{store.ErrMutationNotFound, http.StatusNotFound, app.MsgDataNotFound},
	{store.ErrDeadMutationNotFound, http.StatusNotFound, app.MsgDataNotFound},
}

// classify returns the HTTP status and the client-facing message for err.
func classify(err error) (int, string) {
	for _, c := range errorClasses {
		if errors.Is(err, c.err) {
			return c.status, c.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := classify(err)
	return status
}
