package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-life-keeper/models"
)

func recordRef(r *http.Request) (models.RecordRef, error) {
	kind, err := models.ParseRecordKind(chi.URLParam(r, "kind"))
	if err != nil {
		return models.RecordRef{}, err
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		return models.RecordRef{}, ErrInvalidID
	}
	return models.RecordRef{Kind: kind, ID: id}, nil
}

// decodeBody reads a RecordWriteRequest and decodes its body as kind.
func decodeBody(r *http.Request, kind models.RecordKind) (models.RecordBody, error) {
	var req models.RecordWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Body) == 0 {
		return nil, ErrInvalidJSON
	}

	body, err := models.DecodeBody(kind, req.Body)
	if err != nil {
		return nil, ErrInvalidJSON
	}
	return body, nil
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseRecordKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, "*Handler.createRecord", err)
		return
	}

	body, err := decodeBody(r, kind)
	if err != nil {
		writeError(w, r, "*Handler.createRecord", err)
		return
	}

	view, err := h.records.Create(r.Context(), body)
	if err != nil {
		writeError(w, r, "*Handler.createRecord", err)
		return
	}

	writeJSON(w, r, "*Handler.createRecord", view, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ref, err := recordRef(r)
	if err != nil {
		writeError(w, r, "*Handler.updateRecord", err)
		return
	}

	body, err := decodeBody(r, ref.Kind)
	if err != nil {
		writeError(w, r, "*Handler.updateRecord", err)
		return
	}

	view, err := h.records.Update(r.Context(), ref, body)
	if err != nil {
		writeError(w, r, "*Handler.updateRecord", err)
		return
	}

	writeJSON(w, r, "*Handler.updateRecord", view, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ref, err := recordRef(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteRecord", err)
		return
	}

	if err = h.records.Delete(r.Context(), ref); err != nil {
		writeError(w, r, "*Handler.deleteRecord", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ref, err := recordRef(r)
	if err != nil {
		writeError(w, r, "*Handler.getRecord", err)
		return
	}

	view, err := h.records.Get(r.Context(), ref)
	if err != nil {
		writeError(w, r, "*Handler.getRecord", err)
		return
	}

	writeJSON(w, r, "*Handler.getRecord", view, http.StatusOK)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseRecordKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, "*Handler.listRecords", err)
		return
	}

	views, err := h.records.List(r.Context(), kind)
	if err != nil {
		writeError(w, r, "*Handler.listRecords", err)
		return
	}

	writeJSON(w, r, "*Handler.listRecords", views, http.StatusOK)
}
