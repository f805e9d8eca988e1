package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/utils"
	"github.com/MKhiriev/go-life-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	hashHeader    = "HashSHA256"
	traceIDHeader = "X-Trace-ID"

	defaultRequestTimeout = 15 * time.Second
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu        sync.RWMutex
	token     string
	tokenInfo utils.TokenInfo

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP/REST implementation of [Remote].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the request timeout. When appCfg.HashKey is set every request
// body is signed into the HashSHA256 header.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed as a URL.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Remote, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	a := &httpRemoteAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		now:    time.Now,
		logger: logger,
	}
	if adapterCfg.Token != "" {
		a.SetToken(adapterCfg.Token)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token for the Authorization header. A "Bearer " prefix is
// stripped. The token's claims are read (not verified) so an expired token
// fails fast with [ErrUnauthorized].
func (h *httpRemoteAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if bare, err := utils.ParseBearerToken(token); err == nil {
		token = bare
	}

	var info utils.TokenInfo
	if token != "" {
		parsed, err := utils.InspectToken(token)
		if err != nil {
			h.logger.Warn().Err(err).Str("func", "httpRemoteAdapter.SetToken").Msg("bearer token is not a JWT; expiry is not checked")
		} else {
			info = parsed
			h.logger.Debug().Str("func", "httpRemoteAdapter.SetToken").
				Str("subject", info.Subject).
				Time("expires_at", info.ExpiresAt).
				Msg("bearer token set")
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.tokenInfo = info
}

func (h *httpRemoteAdapter) FetchRemoteVersion(ctx context.Context, ref models.RecordRef) (*models.Record, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var record models.Record
	resp, err := req.
		SetPathParams(map[string]string{"kind": string(ref.Kind), "id": ref.ID}).
		SetResult(&record).
		Get("/api/records/{kind}/{id}")
	if err != nil {
		return nil, fmt.Errorf("fetch remote version request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &record, nil
}

func (h *httpRemoteAdapter) ApplyMutation(ctx context.Context, mutationType models.MutationType, payload models.Record) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(models.ApplyMutationRequest{Type: mutationType, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode mutation: %w", err)
	}
	if sig := h.hasher.Sign(body); sig != "" {
		req.SetHeader(hashHeader, sig)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/mutations")
	if err != nil {
		return fmt.Errorf("apply mutation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	token, info := h.token, h.tokenInfo
	h.mu.RUnlock()

	if token != "" && info.Expired(h.now()) {
		return nil, fmt.Errorf("%w: token expired at %s", ErrUnauthorized, info.ExpiresAt.Format(time.RFC3339))
	}

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req, nil
}
