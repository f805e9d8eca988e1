package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-life-keeper/models"
)

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	remote, ok := h.engines[models.QueueRemote]
	if !ok {
		writeError(w, r, "*Handler.syncStatus", ErrUnknownEngine)
		return
	}

	resp := models.StatusResponse{
		Remote:   remote.Status(),
		Strategy: remote.Strategy(),
		Unlocked: h.records.Unlocked(),
	}
	if vault, ok := h.engines[models.QueueVault]; ok {
		st := vault.Status()
		resp.Vault = &st
	}

	writeJSON(w, r, "*Handler.syncStatus", resp, http.StatusOK)
}

func (h *Handler) syncConflicts(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.syncConflicts", err)
		return
	}

	writeJSON(w, r, "*Handler.syncConflicts", e.Conflicts(), http.StatusOK)
}

func (h *Handler) drain(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.drain", err)
		return
	}

	report, err := e.Drain(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.drain", err)
		return
	}

	writeJSON(w, r, "*Handler.drain", report, http.StatusOK)
}

func (h *Handler) setStrategy(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.setStrategy", err)
		return
	}

	var req models.StrategyRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setStrategy", ErrInvalidJSON)
		return
	}

	strategy, err := models.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, "*Handler.setStrategy", err)
		return
	}

	e.SetStrategy(strategy)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSettings(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.setSettings", err)
		return
	}

	var req models.SettingsRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setSettings", ErrInvalidJSON)
		return
	}

	settings := models.SyncSettings{
		Enabled:  req.Enabled,
		Interval: time.Duration(req.IntervalMs) * time.Millisecond,
	}
	if err = e.Configure(settings); err != nil {
		writeError(w, r, "*Handler.setSettings", err)
		return
	}

	writeJSON(w, r, "*Handler.setSettings", e.Settings(), http.StatusOK)
}

func (h *Handler) setOnline(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.setOnline", err)
		return
	}

	var req models.OnlineRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setOnline", ErrInvalidJSON)
		return
	}

	e.SetOnline(req.Online)
	writeJSON(w, r, "*Handler.setOnline", e.Status(), http.StatusOK)
}

func deadID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func (h *Handler) listDeadLetter(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.listDeadLetter", err)
		return
	}

	dead, err := e.ListDeadLetter(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listDeadLetter", err)
		return
	}
	if dead == nil {
		dead = []models.DeadMutation{}
	}

	writeJSON(w, r, "*Handler.listDeadLetter", dead, http.StatusOK)
}

func (h *Handler) retryDeadLetter(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.retryDeadLetter", err)
		return
	}
	id, err := deadID(r)
	if err != nil {
		writeError(w, r, "*Handler.retryDeadLetter", err)
		return
	}

	mutation, err := e.RetryDeadLetter(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.retryDeadLetter", err)
		return
	}

	writeJSON(w, r, "*Handler.retryDeadLetter", mutation, http.StatusOK)
}

func (h *Handler) deleteDeadLetter(w http.ResponseWriter, r *http.Request) {
	e, err := h.engine(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteDeadLetter", err)
		return
	}
	id, err := deadID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteDeadLetter", err)
		return
	}

	if err = e.DeleteDeadLetter(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteDeadLetter", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
