package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-life-keeper/internal/service"
	"github.com/MKhiriev/go-life-keeper/models"
)

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.unlock", ErrInvalidJSON)
		return
	}

	salt, err := base64.StdEncoding.DecodeString(req.Salt)
	if err != nil {
		writeError(w, r, "*Handler.unlock", service.ErrInvalidSalt)
		return
	}

	if err = h.records.Unlock(r.Context(), req.Password, salt); err != nil {
		writeError(w, r, "*Handler.unlock", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	if err := h.records.Lock(r.Context()); err != nil {
		writeError(w, r, "*Handler.lock", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
