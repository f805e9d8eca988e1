package http

import (
	"net/http"

	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/service"
	"github.com/MKhiriev/go-life-keeper/internal/utils"
	"github.com/MKhiriev/go-life-keeper/models"
)

type Handler struct {
	records service.RecordService
	engines map[string]service.SyncEngine
	hasher  *utils.Hasher
	build   models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler builds the control API over services. hashKey enables request
// body verification on write endpoints; an empty key disables it.
func NewHandler(services *service.ClientServices, hashKey string, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	engines := make(map[string]service.SyncEngine, len(services.Engines))
	for _, e := range services.Engines {
		engines[e.Name()] = e
	}

	logger.Info().Int("engines", len(engines)).Msg("http handler created")
	return &Handler{
		records: services.Records,
		engines: engines,
		hasher:  utils.NewHasher(hashKey),
		build:   build,
		logger:  logger,
	}
}

// engine resolves the engine named by the engine query parameter.
func (h *Handler) engine(r *http.Request) (service.SyncEngine, error) {
	name := r.URL.Query().Get("engine")
	if name == "" {
		name = models.QueueRemote
	}

	e, ok := h.engines[name]
	if !ok {
		return nil, ErrUnknownEngine
	}
	return e, nil
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, msg := classify(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, msg, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, fn string, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
